package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger with optional context extractors.
// Extractors run on every log call so request-scoped values stay fresh.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(Decorate(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Used as the default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
