package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// Config holds runtime settings for the tracker CLI.
type Config struct {
	DatabasePath  string
	SaveDebounce  time.Duration
	LogLevel      string
	LogBackend    string
	FlushOnLogout bool
	SeedDemoUser  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "tracker.db"
	c.SaveDebounce = time.Second
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
	c.FlushOnLogout = false
	c.SeedDemoUser = true
}

// Validate rejects settings the rest of the program cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.SaveDebounce <= 0 {
		return fmt.Errorf("save debounce must be positive, got %s", c.SaveDebounce)
	}
	switch strings.ToLower(c.LogBackend) {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file named in args, the
// environment and finally the flags in args. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
