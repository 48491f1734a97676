package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/bakery/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string       database DSN (default from Config)
//	-driver string  database driver, sqlite or pgx
//	-l string       log level
//	-r float        redirect delay in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-driver", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.DatabaseDriver, "driver", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	redirect := fs.Float64("r", cfg.RedirectDelay.Seconds(), "redirect delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RedirectDelay = time.Duration(*redirect * float64(time.Second))
}
