package config

import "time"

// Config holds runtime settings for the bakery client.
//
// Fields:
//   - DatabaseDriver: "sqlite" (modernc) or "pgx" (PostgreSQL) for the durable store.
//   - DatabaseDSN: file path or connection string for that driver.
//   - LogFormat: "text", "json" or "zap".
//   - LogLevel: "debug", "info", "warn" or "error".
//   - RedirectDelay: pause before moving on after register/login/logout.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	LogFormat      string
	LogLevel       string
	RedirectDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "bakery.db"
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.RedirectDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
