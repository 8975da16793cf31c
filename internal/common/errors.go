// Package common defines sentinel errors shared across the server layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("forbidden")

	// Validation errors. Wrap with fmt.Errorf to name the offending field.
	ErrorValidation = errors.New("validation error")

	// Auth errors (missing, invalid or malformed token).
	ErrorNoToken                 = errors.New("no token provided")
	ErrInvalidToken              = errors.New("invalid token")
	ErrorInvalidAuthHeaderFormat = errors.New("invalid auth header format")

	// Membership errors.
	ErrAlreadyJoined = errors.New("already joined")
)
