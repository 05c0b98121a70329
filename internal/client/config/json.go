package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/flagx"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabasePath  string          `json:"database_path"`
	SaveDebounce  *timex.Duration `json:"save_debounce"`
	LogLevel      string          `json:"log_level"`
	LogBackend    string          `json:"log_backend"`
	FlushOnLogout *bool           `json:"flush_on_logout"`
	SeedDemoUser  *bool           `json:"seed_demo_user"`
}

// parseJSON overlays cfg with the file given via -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SaveDebounce != nil {
		cfg.SaveDebounce = jc.SaveDebounce.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.FlushOnLogout != nil {
		cfg.FlushOnLogout = *jc.FlushOnLogout
	}
	if jc.SeedDemoUser != nil {
		cfg.SeedDemoUser = *jc.SeedDemoUser
	}
	return nil
}
