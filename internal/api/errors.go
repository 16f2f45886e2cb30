package api

import (
	"errors"
	"net/http"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/service/auth"
	"github.com/mealmasterhq/meal-master-api/internal/store"
)

// errForbidden marks an ownership or role violation detected inside a
// handler (the middleware-level admin gate responds directly).
var errForbidden = errors.New("forbidden access")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, errForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrMealNotFound),
		errors.Is(err, store.ErrReviewNotFound),
		errors.Is(err, store.ErrRequestNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "unauthorized access"

	case errors.Is(err, errForbidden):
		return "forbidden access"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrMealNotFound):
		return "Meal not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrRequestNotFound):
		return "Requested meal not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrInvalidID):
		return "Invalid document ID"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError translates an internal error into the wire format:
// `{"message": ...}` for 401/403, the fixed generic body for 500, and
// `{"error": ...}` for everything else.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	switch {
	case status >= http.StatusInternalServerError:
		shared.RespondWithInternalError(w, r, err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		shared.RespondWithMessage(w, r, status, GetSafeErrorMessage(err))
	default:
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
	}
}
