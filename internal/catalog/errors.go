package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the id does not exist. Mutations never silently
	// no-op on a missing id.
	ErrNotFound = errors.New("product not found")

	// ErrStoreUnavailable wraps unexpected backend failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError names the offending field. Validation runs before any
// store call, so a rejected input never leaves a partial row behind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
