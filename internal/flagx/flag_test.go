package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		boolFlags  []string
		want       []string
	}{
		{
			name:       "short flag with separate value",
			args:       []string{"-c", "conf.json", "-x", "localhost"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{"-c", "conf.json"},
		},
		{
			name:       "long flag with equals",
			args:       []string{"--config=alt.json", "-x", "localhost"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{"--config=alt.json"},
		},
		{
			name:       "both short and long present, preserve order",
			args:       []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:       "unknown flags ignored",
			args:       []string{"-x", "1", "--y=2", "positional"},
			valueFlags: []string{"-c", "--config"},
			want:       []string{},
		},
		{
			name:       "flag without value at end is kept as-is",
			args:       []string{"-c"},
			valueFlags: []string{"-c"},
			want:       []string{"-c"},
		},
		{
			name:       "flag followed by another flag (no value)",
			args:       []string{"-c", "-notvalue"},
			valueFlags: []string{"-c"},
			want:       []string{"-c"},
		},
		{
			name:       "bool flag does not swallow subcommand",
			args:       []string{"-f", "migrate", "-d", "x.db"},
			valueFlags: []string{"-d"},
			boolFlags:  []string{"-f"},
			want:       []string{"-f", "-d", "x.db"},
		},
		{
			name:      "bool flag with explicit value",
			args:      []string{"-s=false"},
			boolFlags: []string{"-s"},
			want:      []string{"-s=false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.valueFlags, tt.boolFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flags", []string{"-d", "x.db"}, ""},
		{"short", []string{"-c", "conf.json"}, "conf.json"},
		{"long", []string{"-config", "long.json"}, "long.json"},
		{"inline", []string{"-d", "x.db", "-c=inline.json"}, "inline.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
