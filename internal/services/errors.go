// Package services implements the request lifecycle: submission, lookup,
// listing, and admin responses. This file centralizes the service-level
// error values so they can be consistently returned by service methods and
// checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer. Validation failures all wrap ErrValidation so handlers
// can match the whole family with errors.Is.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of every caller-input error. Concrete
	// failures wrap it with field context, e.g. "invalid request input:
	// description is required".
	ErrValidation = errors.New("invalid request input")

	// ErrRequestNotFound indicates that no request exists for the given
	// protocol. It is an expected outcome of lookups, not a fault.
	ErrRequestNotFound = errors.New("request not found")

	// ErrEmptyResponse is returned when an admin tries to change a request's
	// status without providing a response text or at least one attachment.
	ErrEmptyResponse = fmt.Errorf("%w: response or attachment required", ErrValidation)
)

// validationf builds a field-specific error wrapping ErrValidation.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
