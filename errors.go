package copilotclient

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the client configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBackendUnreachable is returned when the backend cannot be reached at
	// the transport level. The message is the user-facing string; the raw
	// transport error is deliberately not carried.
	ErrBackendUnreachable = errors.New("unable to reach the copilot service. Please check your connection and try again")

	// ErrPayloadTooLarge is returned for HTTP 413 responses
	ErrPayloadTooLarge = errors.New("the attached files are too large. Please remove some files and try again")

	// ErrUnsupportedMedia is returned for HTTP 415 responses
	ErrUnsupportedMedia = errors.New("one of the attached files has an unsupported type")

	// ErrServerError is returned for 5xx responses that carry a parseable
	// error body. A 5xx with no usable body falls back to the generic
	// "HTTP error! status: N" message instead.
	ErrServerError = errors.New("the copilot service hit an internal error. Please try again")

	// ErrCleanupFailed is returned when one or more explicit cleanup calls
	// fail. Callers are expected to treat it as non-critical and continue.
	ErrCleanupFailed = errors.New("session cleanup failed")
)

// APIError represents a backend call failure with additional context
type APIError struct {
	Op         string // Operation that failed
	StatusCode int    // HTTP status code, 0 for non-HTTP failures
	Detail     string // Human-readable message shown to the user
	Err        error  // Underlying or sentinel error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: HTTP error! status: %d", e.Op, e.StatusCode)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(op string, err error) *APIError {
	return &APIError{
		Op:  op,
		Err: err,
	}
}
