package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/handler"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 15 * time.Second

type server struct {
	transports []transport
	jobs       []BackgroundJob

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer creates the listeners enabled in cfg. jobs are started by Run
// and stopped before the listeners shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, jobs ...BackgroundJob) (Server, error) {
	s := &server{jobs: jobs, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	logger.Info().Int("transports", len(s.transports)).Int("jobs", len(jobs)).Msg("server created")
	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	for _, job := range s.jobs {
		job.Start(ctx)
	}

	for _, t := range s.transports {
		g.Go(func() error {
			if err := t.serve(); err != nil {
				return fmt.Errorf("%s server: %w", t.name(), err)
			}
			return nil
		})
	}

	// a signal, the caller or a failed listener ends every transport
	g.Go(func() error {
		<-ctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, job := range s.jobs {
			job.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var wg sync.WaitGroup
		for _, t := range s.transports {
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.shutdown(ctx)
				s.logger.Info().Str("transport", t.name()).Msg("stopped")
			}()
		}
		wg.Wait()
	})
}
