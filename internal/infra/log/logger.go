package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"boxtrack/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultFileMaxSizeMB  = 100
	defaultFileMaxBackups = 5
	defaultFileMaxAgeDays = 28
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if rotated := newFileWriter(params.Config.Env.Log.File); rotated != nil {
		out = io.MultiWriter(os.Stdout, rotated)
		params.Lc.Append(fx.StopHook(rotated.Close))
	}

	return newLogger(out, level, params.Config.Env.Log.Pretty), nil
}

func newLogger(out io.Writer, level slog.Level, pretty bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

// newFileWriter returns nil when no file path is configured
func newFileWriter(cfg config.LogFile) *lumberjack.Logger {
	if cfg.Path == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    orDefault(cfg.MaxSizeMB, defaultFileMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxBackups, defaultFileMaxBackups),
		MaxAge:     orDefault(cfg.MaxAgeDays, defaultFileMaxAgeDays),
		Compress:   cfg.Compress,
	}
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}

	return value
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
