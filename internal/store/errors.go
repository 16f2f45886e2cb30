package store

import "errors"

// Common store errors returned by implementations of the store
// interfaces. Handlers map these to HTTP status codes.
var (
	// ErrUserNotFound indicates the requested user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMealNotFound indicates the requested meal does not exist
	ErrMealNotFound = errors.New("meal not found")

	// ErrReviewNotFound indicates the requested review does not exist
	ErrReviewNotFound = errors.New("review not found")

	// ErrRequestNotFound indicates the requested meal request does not exist
	ErrRequestNotFound = errors.New("requested meal not found")

	// ErrEmailExists indicates a user with the same email already exists
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidID indicates a malformed document identifier
	ErrInvalidID = errors.New("invalid document ID")
)
