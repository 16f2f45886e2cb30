package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// loggerKey is the context key under which request-scoped loggers are
// stored.
var loggerKey = contextKey{}

// WithLogger returns a copy of ctx carrying the given logger.
// Middleware uses this to attach request-scoped attributes (trace ID,
// authenticated email) that downstream log calls inherit.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger stored in ctx, falling back to the
// process default logger when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
