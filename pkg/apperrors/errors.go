// Package apperrors defines the error taxonomy shared by every service.
// Services wrap these sentinels with context; handlers map them to HTTP
// status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation signals a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a referenced id that does not exist in its store.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals a principal that fails the access-control predicate.
	ErrForbidden = errors.New("forbidden")
)
