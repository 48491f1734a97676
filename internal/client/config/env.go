package config

import (
	"github.com/dmitrijs2005/bakery/internal/timex"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "BAKERY"

// EnvConfig maps BAKERY_* environment variables.
type EnvConfig struct {
	DatabaseDriver string         `envconfig:"DB_DRIVER"`
	DatabaseDSN    string         `envconfig:"DB_DSN"`
	LogFormat      string         `envconfig:"LOG_FORMAT"`
	LogLevel       string         `envconfig:"LOG_LEVEL"`
	RedirectDelay  timex.Duration `envconfig:"REDIRECT_DELAY"`
}

// parseEnv overlays Config with the variables that are set. Panics when a
// variable cannot be decoded.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}
	overlay(cfg, ec.DatabaseDriver, ec.DatabaseDSN, ec.LogFormat, ec.LogLevel, ec.RedirectDelay)
}
