package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		level   string
		want    string
		wantErr bool
	}{
		{name: "default is slog", backend: "", level: "info", want: "level=INFO"},
		{name: "slog debug", backend: "slog", level: "debug", want: "level=DEBUG"},
		{name: "zap", backend: "zap", level: "debug", want: "DEBUG"},
		{name: "unknown backend", backend: "logrus", wantErr: true},
		{name: "bad slog level", backend: "slog", level: "loud", wantErr: true},
		{name: "bad zap level", backend: "zap", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.backend, tt.level, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			l.Debug(context.Background(), "probe")
			l.Info(context.Background(), "probe")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
