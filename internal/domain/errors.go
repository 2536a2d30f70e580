package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the workflow error taxonomy. Callers match
// with errors.Is; the handler layer maps each to an HTTP status.
var (
	// ErrUnauthenticated means no actor could be resolved for the call.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound means the target resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor's role or ownership check failed.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the requested action is not legal from
	// the article's current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrConflict means the article's status changed concurrently between
	// the caller's read and write. Re-read and resubmit to retry.
	ErrConflict = errors.New("conflict")

	// ErrAuditWrite marks a failed audit append. It is non-fatal: the
	// mutation it describes has already committed and is never rolled
	// back. Surfaced as a warning alongside the successful result.
	ErrAuditWrite = errors.New("audit write failed")
)

// ValidationError reports malformed input, keyed by field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuditWriteError wraps the underlying audit append failure so callers
// can surface it without discarding the cause.
type AuditWriteError struct {
	Err error
}

func (e *AuditWriteError) Error() string {
	return fmt.Sprintf("%v: %v", ErrAuditWrite, e.Err)
}

func (e *AuditWriteError) Unwrap() error { return ErrAuditWrite }
