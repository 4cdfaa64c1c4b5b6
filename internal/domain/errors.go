package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP statuses via the
// response package.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
	ErrUpstream    = errors.New("upstream call failed")
	ErrSignature   = errors.New("signature mismatch")
)

// DomainError wraps a sentinel kind with a public-safe message and an
// optional internal cause. The cause is for server-side logs only and must
// never reach an HTTP response.
type DomainError struct {
	Err     error
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Err, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewValidationError reports client-supplied data that is missing or invalid.
func NewValidationError(message string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: message}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{Err: ErrNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewPersistenceError reports a failed storage operation.
func NewPersistenceError(cause error) *DomainError {
	return &DomainError{Err: ErrPersistence, Message: "storage operation failed", Cause: cause}
}

// NewUpstreamError reports a failed or malformed third-party call.
func NewUpstreamError(message string, cause error) *DomainError {
	return &DomainError{Err: ErrUpstream, Message: message, Cause: cause}
}

// NewSignatureError reports a webhook signature mismatch. Terminal; the
// payload must be discarded without side effects.
func NewSignatureError() *DomainError {
	return &DomainError{Err: ErrSignature, Message: "invalid webhook signature"}
}

// Is reports whether err carries the given sentinel kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
