package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

const (
	envDatabasePath  = "TRACKER_DATABASE_PATH"
	envSaveDebounce  = "TRACKER_SAVE_DEBOUNCE"
	envLogLevel      = "TRACKER_LOG_LEVEL"
	envLogBackend    = "TRACKER_LOG_BACKEND"
	envFlushOnLogout = "TRACKER_FLUSH_ON_LOGOUT"
	envSeedDemoUser  = "TRACKER_SEED_DEMO_USER"
)

var lookupEnv = os.LookupEnv

// loadDotEnv exports the variables in path into the process environment.
// Variables already set are kept. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(envSaveDebounce); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envSaveDebounce, err)
		}
		cfg.SaveDebounce = d
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogBackend); ok && v != "" {
		cfg.LogBackend = v
	}
	for name, dst := range map[string]*bool{
		envFlushOnLogout: &cfg.FlushOnLogout,
		envSeedDemoUser:  &cfg.SeedDemoUser,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = b
	}
	return nil
}
