package logs

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"boxtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo, false)

	logger.Debug("hidden")
	logger.Info("shipment created", slog.String("trackingNumber", "BOX-1-ABCDEF"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shipment created"`)
	assert.Contains(t, out, `"trackingNumber":"BOX-1-ABCDEF"`)
}

func TestNewFileWriter(t *testing.T) {
	assert.Nil(t, newFileWriter(config.LogFile{}))

	w := newFileWriter(config.LogFile{Path: "/tmp/boxtrack.log", MaxBackups: 2})
	require.NotNil(t, w)
	assert.Equal(t, defaultFileMaxSizeMB, w.MaxSize)
	assert.Equal(t, 2, w.MaxBackups)
	assert.Equal(t, defaultFileMaxAgeDays, w.MaxAge)
}

func TestNew_TeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.File.Path = path

	lc := fxtest.NewLifecycle(t)
	logger, err := New(Params{Lc: lc, Config: cfg})
	require.NoError(t, err)

	lc.RequireStart()
	logger.Info("written to file")
	lc.RequireStop()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}
