package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// Env is what a command runs against.
type Env struct {
	Services *service.Services
	Logger   *logger.Logger

	closer func() error
}

// NewEnv wraps services that need no cleanup.
func NewEnv(services *service.Services, logger *logger.Logger) *Env {
	return &Env{Services: services, Logger: logger}
}

func (e *Env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer()
}

// EnvOpener builds the Env of one command invocation.
type EnvOpener func(ctx context.Context, opts *RootOptions) (*Env, error)

// OpenEnv connects to the database named in the configuration and wires the
// services over it.
func OpenEnv(ctx context.Context, opts *RootOptions) (*Env, error) {
	cfg, err := config.GetCLIConfig(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	log := logger.NewCLILogger("synctl", opts.Verbose)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot open database", err)
	}

	services, err := service.NewServices(storages, config.StructuredConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}, nil, log)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}

	return &Env{Services: services, Logger: log, closer: storages.Close}, nil
}

// withEnv opens the Env, runs fn and closes the Env again.
func withEnv(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, env *Env) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := opts.open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, env.Close())
	}()

	if env.Logger != nil {
		ctx = env.Logger.WithContext(ctx)
	}
	return fn(ctx, env)
}
