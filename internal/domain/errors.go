package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidArgument is returned for malformed configuration or input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation is not allowed in the current state.
	ErrInvalidState = errors.New("invalid state")

	// ErrTransientQuery is returned when a single payment-status query fails.
	ErrTransientQuery = errors.New("transient query failure")

	// ErrSearchFailed is returned when the remote search service does not answer successfully.
	ErrSearchFailed = errors.New("search failed")

	// ErrSessionNotFound is returned when a checkout session is unknown.
	ErrSessionNotFound = errors.New("checkout session not found")

	// ErrUnknownPackage is returned when a premium package id is not offered.
	ErrUnknownPackage = errors.New("unknown premium package")

	// ErrNotFound is returned by storage lookups that match nothing.
	ErrNotFound = errors.New("not found")
)

// RemoteError describes a failed call to one of the remote services.
type RemoteError struct {
	// Endpoint is the logical name of the remote call (e.g., "search", "payment_status")
	Endpoint string

	// StatusCode is the HTTP status, or 0 when no response was received
	StatusCode int

	// Err is the underlying error
	Err error

	// Retryable marks transport failures and 5xx responses
	Retryable bool
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError creates a non-retryable RemoteError.
func NewRemoteError(endpoint string, statusCode int, err error) *RemoteError {
	return &RemoteError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

// NewRetryableRemoteError creates a RemoteError that callers may retry.
func NewRetryableRemoteError(endpoint string, statusCode int, err error) *RemoteError {
	return &RemoteError{Endpoint: endpoint, StatusCode: statusCode, Err: err, Retryable: true}
}

// ValidationError is a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidArgument formats a message and wraps ErrInvalidArgument.
func WrapInvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// WrapInvalidState formats a message and wraps ErrInvalidState.
func WrapInvalidState(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// IsInvalidArgument checks if err is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidState checks if err is or wraps ErrInvalidState.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsRetryable reports whether err carries a retryable RemoteError.
func IsRetryable(err error) bool {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Retryable
	}
	return false
}
