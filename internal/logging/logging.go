// Package logging provides structured logging infrastructure for skill-transfer.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/skill-transfer/skill-transfer/internal/config"
)

// NewFromConfig creates a new slog.Logger based on configuration.
// With no log file configured it writes to stderr and returns a nil closer.
// With a file configured, output goes only to a size-rotated file so the
// interactive screen is never interleaved with log lines.
func NewFromConfig(cfg *config.Config, baseDir string) (*slog.Logger, io.Closer, error) {
	level := parseLevel(cfg.Logging.Level)

	logPath := cfg.LogFile(baseDir)
	if logPath == "" {
		return slog.New(newHandler(cfg.Logging.Format, os.Stderr, level)), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, err
	}

	rot := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    positiveOr(cfg.Logging.MaxSizeMB, 10),
		MaxBackups: positiveOr(cfg.Logging.MaxBackups, 3),
		MaxAge:     positiveOr(cfg.Logging.MaxAgeDays, 30),
	}

	return slog.New(newHandler(cfg.Logging.Format, rot, level)), rot, nil
}

// NewDefault creates a default logger writing warnings to stderr.
func NewDefault() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// WithSkill returns a logger with skill context.
func WithSkill(logger *slog.Logger, name, sourcePath string) *slog.Logger {
	return logger.With("skill", name, "source", sourcePath)
}

// WithTool returns a logger with target tool context.
func WithTool(logger *slog.Logger, tool string, mode string) *slog.Logger {
	return logger.With("tool", tool, "mode", mode)
}
