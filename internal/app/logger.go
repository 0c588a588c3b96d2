package app

import (
	"io"
	"log/slog"
)

// newLogger creates a new slog.Logger instance for one run. It does not set
// the global logger, allowing for isolated logger instances. The level
// arrives pre-vetted from the cli layer, so the only choice left here is
// the handler format.
func newLogger(level slog.Level, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
