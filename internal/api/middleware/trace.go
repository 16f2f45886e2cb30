package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
)

// TraceMiddleware assigns each request a trace ID and attaches a
// request-scoped logger carrying it, so every downstream log line and
// error response can be correlated.
type TraceMiddleware struct {
	logger *slog.Logger
}

// NewTraceMiddleware creates a TraceMiddleware using the given base
// logger.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	m := &TraceMiddleware{logger: log}
	return m.Handle
}

// Handle wraps the next handler with trace-ID setup.
func (m *TraceMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		reqLogger := m.logger.With(
			"trace_id", shared.GetTraceID(ctx),
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx = logger.WithLogger(ctx, reqLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
