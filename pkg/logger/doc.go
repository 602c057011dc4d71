// Package logger provides slog-based logging helpers for crud applications.
//
// The package produces JSON-formatted loggers suitable for production use,
// a no-op logger for tests and unconfigured defaults, and a handler
// decorator that injects request-scoped attributes (such as request IDs)
// extracted from the context on every log call.
package logger
