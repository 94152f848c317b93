// Package logging builds the server's slog.Logger. Logs always go to
// stderr: stdout carries the MCP transport and must stay clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger from the textual level and format configuration,
// writing to w. A nil w defaults to os.Stderr. Unknown levels fall back
// to info, unknown formats to text.
func New(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
