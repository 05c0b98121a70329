package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "tracker.db", c.DatabasePath)
	assert.Equal(t, time.Second, c.SaveDebounce)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.False(t, c.FlushOnLogout)
	assert.True(t, c.SeedDemoUser)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"database_path": "from-json.db",
		"save_debounce": "3s",
		"log_level":     "debug",
	})
	t.Setenv(envSaveDebounce, "2s")
	t.Setenv(envLogBackend, "zap")

	cfg, err := LoadConfig([]string{"-c", path, "-d", filepath.Join("x", "flag.db"), "-f"})
	require.NoError(t, err)

	want := &Config{
		DatabasePath:  filepath.Join("x", "flag.db"),
		SaveDebounce:  2 * time.Second,
		LogLevel:      "debug",
		LogBackend:    "zap",
		FlushOnLogout: true,
		SeedDemoUser:  true,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig([]string{"-w", "0"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-b", "logrus"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.DatabasePath = "  "
	require.Error(t, c.Validate())

	c = defaults()
	c.LogBackend = "ZAP"
	require.NoError(t, c.Validate())
}
