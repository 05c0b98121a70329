package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_path":   "json.db",
		"save_debounce":   "10s",
		"log_backend":     "zap",
		"flush_on_logout": true,
		"seed_demo_user":  false,
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "json.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.SaveDebounce)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.FlushOnLogout)
		assert.False(t, cfg.SeedDemoUser)
	})

	t.Run("nanosecond durations", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"save_debounce": 5e8})
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", p}))
		assert.Equal(t, 500*time.Millisecond, cfg.SaveDebounce)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := &Config{DatabasePath: "defaults.db", SaveDebounce: 42 * time.Second}
		require.NoError(t, parseJSON(cfg, nil))

		assert.Equal(t, "defaults.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.SaveDebounce)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(defaults(), []string{"-config", bad}))
	})
}
