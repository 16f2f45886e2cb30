package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorResponse is the generic failure body: `{"error": "..."}`.
// Store and payment failures always surface as a generic message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body used for auth failures and informational
// results: `{"message": "..."}`.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an `{"error": ...}` body with the given
// status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logError(r, status, message, nil)
	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithMessage writes a `{"message": ...}` body with the given
// status code. Used for 401/403 responses and sentinel results.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	logError(r, status, message, nil)
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithInternalError logs the underlying error server-side and
// sends the fixed generic 500 body. The original error never reaches
// the client.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logError(r, http.StatusInternalServerError, "Internal Server Error", err)
	RespondWithJSON(w, r, http.StatusInternalServerError,
		ErrorResponse{Error: "Internal Server Error"})
}

// logError records the outgoing error with the request trace ID.
// 5xx responses log at ERROR, everything else at DEBUG.
func logError(r *http.Request, status int, message string, err error) {
	attrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("message", message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "API error response", attrs...)
}
