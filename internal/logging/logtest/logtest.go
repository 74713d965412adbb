// Package logtest provides loggers for tests.
package logtest

import (
	"bytes"
	"io"
	"log/slog"
)

// Discard returns a silent logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Capture returns a debug-level text logger and the buffer it writes to.
func Capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), &buf
}
