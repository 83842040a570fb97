// Package apperrors defines the sentinel errors shared between services,
// repositories, and handlers. Handlers dispatch on them with errors.Is to pick
// an HTTP status; the messages themselves go to the client unchanged.
package apperrors

import "errors"

var (
	// registration conflicts
	ErrUsernameExists = errors.New("Username already exists")
	ErrEmailExists    = errors.New("Email already exists")

	// login failure; one message for unknown user and wrong password so the
	// endpoint cannot be used to enumerate usernames
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// lookup failures
	ErrUserNotFound       = errors.New("User not found")
	ErrPredictionNotFound = errors.New("Prediction not found")

	// caller resolved but does not own the record
	ErrNotOwner = errors.New("Unauthorized")

	// no usable identity on a history request
	ErrUnauthenticated = errors.New("Authentication required")

	// store/connectivity failures, never conflated with not-found
	ErrInternal = errors.New("Internal server error")
)
