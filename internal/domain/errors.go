package domain

import (
	"errors"
	"fmt"
)

// Terminal error kinds. None of these is retryable; each maps to a distinct
// status code at the HTTP boundary.
var (
	ErrListingNotFound        = errors.New("Listing not found")
	ErrUserNotFound           = errors.New("User not found")
	ErrAuthenticationRequired = errors.New("Authentication required")
	ErrPermissionDenied       = errors.New("Permission denied")
)

// ValidationError reports a malformed or out-of-range field. Field always
// names the offending input field so clients can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for field with a reason.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
