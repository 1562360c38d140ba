package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "CAREERFORGE_"

// parseEnv loads ./.env when present, then overlays variables prefixed with
// CAREERFORGE_. Unset variables leave cfg untouched.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
