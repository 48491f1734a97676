// Package config loads runtime configuration for the bakery client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     ".yaml"/".yml" files are YAML, everything else JSON.
//  3. BAKERY_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string       database DSN
//	-driver string  database driver: sqlite or pgx
//	-l string       log level
//	-r float        redirect delay (seconds)
//
// Environment
//
//	BAKERY_DB_DRIVER, BAKERY_DB_DSN, BAKERY_LOG_FORMAT, BAKERY_LOG_LEVEL,
//	BAKERY_REDIRECT_DELAY (e.g. "2s")
//
// # File schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "bakery.db",
//	  "log_format": "json",
//	  "log_level": "debug",
//	  "redirect_delay": "1500ms"
//	}
//
// The YAML form uses the same keys.
package config
