// Package config loads runtime configuration for the tracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or --config.
//  3. Environment variables (TRACKER_*), after loading an optional .env file.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d, --db string            path of the local SQLite database file
//	-w, --debounce int         save debounce (milliseconds)
//	-l, --log-level string     log level (debug, info, warn, error)
//	-b, --log-backend string   log backend (slog, zap)
//	-f, --flush-on-logout      flush unsaved changes on logout
//	-s, --seed-demo            seed the demo account on startup
//
// # JSON schema
//
// Durations use timex.Duration, so "1s" and integer nanoseconds both work:
//
//	{
//	  "database_path": "tracker.db",
//	  "save_debounce": "1s",
//	  "log_level": "warn",
//	  "log_backend": "slog",
//	  "flush_on_logout": false,
//	  "seed_demo_user": true
//	}
//
// # Environment
//
//	TRACKER_DATABASE_PATH, TRACKER_SAVE_DEBOUNCE ("1s"), TRACKER_LOG_LEVEL,
//	TRACKER_LOG_BACKEND, TRACKER_FLUSH_ON_LOGOUT, TRACKER_SEED_DEMO_USER
package config
