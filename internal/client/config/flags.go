package config

import (
	"flag"
	"io"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/flagx"
)

// Short and long spellings; the long ones match the cobra flag names.
var (
	valueFlags = []string{"-d", "--db", "-w", "--debounce", "-l", "--log-level", "-b", "--log-backend"}
	boolFlags  = []string{"-f", "--flush-on-logout", "-s", "--seed-demo"}
)

// parseFlags populates cfg from the flags it owns. Everything else in args
// is filtered out first, so subcommands and cobra flags pass through.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, valueFlags, boolFlags)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	debounce := int(cfg.SaveDebounce.Milliseconds())
	for _, name := range []string{"d", "db"} {
		fs.StringVar(&cfg.DatabasePath, name, cfg.DatabasePath, "path of the local database file")
	}
	for _, name := range []string{"w", "debounce"} {
		fs.IntVar(&debounce, name, debounce, "save debounce (in milliseconds)")
	}
	for _, name := range []string{"l", "log-level"} {
		fs.StringVar(&cfg.LogLevel, name, cfg.LogLevel, "log level")
	}
	for _, name := range []string{"b", "log-backend"} {
		fs.StringVar(&cfg.LogBackend, name, cfg.LogBackend, "log backend (slog or zap)")
	}
	for _, name := range []string{"f", "flush-on-logout"} {
		fs.BoolVar(&cfg.FlushOnLogout, name, cfg.FlushOnLogout, "flush unsaved changes on logout")
	}
	for _, name := range []string{"s", "seed-demo"} {
		fs.BoolVar(&cfg.SeedDemoUser, name, cfg.SeedDemoUser, "seed the demo account")
	}

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.SaveDebounce = time.Duration(debounce) * time.Millisecond
	return nil
}
