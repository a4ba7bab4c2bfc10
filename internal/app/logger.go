package app

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pathgrid/config"
)

// NewLogger creates a slog.Logger writing to outW. It does not set the
// global logger. Unknown levels fall back to info, unknown formats to text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := config.ParseLevel(levelStr)
	if err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
