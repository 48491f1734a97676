package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/bakery/internal/flagx"
	"github.com/dmitrijs2005/bakery/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// RedirectDelay uses timex.Duration so files can say "1500ms" or give
// integer nanoseconds.
type FileConfig struct {
	DatabaseDriver string         `json:"database_driver" yaml:"database_driver"`
	DatabaseDSN    string         `json:"database_dsn" yaml:"database_dsn"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	RedirectDelay  timex.Duration `json:"redirect_delay" yaml:"redirect_delay"`
}

// parseFile overlays Config with values from the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, anything else
// as JSON. Only keys present in the file are applied.
//
// Panics on read or unmarshal errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(cfg, fc.DatabaseDriver, fc.DatabaseDSN, fc.LogFormat, fc.LogLevel, fc.RedirectDelay)
}

func overlay(cfg *Config, driver, dsn, format, level string, delay timex.Duration) {
	if driver != "" {
		cfg.DatabaseDriver = driver
	}
	if dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if format != "" {
		cfg.LogFormat = format
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if delay.Duration != 0 {
		cfg.RedirectDelay = delay.Duration
	}
}
