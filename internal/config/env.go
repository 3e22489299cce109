package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadEnv overrides cfg with any DICECHESS_* variables that are set.
// Unset variables leave the current values in place.
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
