package config

import (
	"fmt"
)

// CLIConfig is the view of the configuration used by synctl. It reads the
// same sources as the server except command-line flags, which belong to
// cobra in the CLI.
type CLIConfig struct {
	App     App
	Storage Storage
	Adapter Adapter
}

// GetCLIConfig builds and validates the CLI view. A non-empty path takes
// precedence over the CONFIG environment variable.
func GetCLIConfig(path string) (*CLIConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withPath(path).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cliCfg := &CLIConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return cliCfg, cliCfg.validate()
}
