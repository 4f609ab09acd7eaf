package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, or from the process environment when
// environ is nil. Section prefixes come from the envPrefix tags (APP_,
// SERVER_, STORAGE_DB_ and so on); unset variables leave their fields zero
// so later sources can fill them.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("reading sync node settings from env: %w", err)
	}
	return nil
}
