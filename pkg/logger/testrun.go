package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; level is accepted so it matches the
// handler constructor signature used by New.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
