package api

// errors.go defines the error codes used by the service

import "fmt"

// Error represents a structured error that can be mapped to an HTTP response.
type Error struct {
	// code determines the HTTP status and public message
	code ErrorCode

	// message is a human-readable error message (logged, never returned to the client)
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Unwrap() error   { return e.wrapped }

// ErrorCode identifies the kind of failure.
type ErrorCode int

const (
	// ErrCodeInternalError is used for any unexpected failure during request processing
	ErrCodeInternalError ErrorCode = iota + 1

	// ErrCodeNotFound is used when no route or static file matched the request
	ErrCodeNotFound

	// ErrCodeMalformedJSON is used when a JSON request body cannot be parsed
	ErrCodeMalformedJSON

	// ErrCodeRequestTooLarge is used when the request body exceeds the configured limit
	// - this is only used in the middleware
	ErrCodeRequestTooLarge

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded

	// ErrCodeTimeout is used when the request context deadline passed before a response was written
	ErrCodeTimeout
)

// NewNotFoundError creates an error for requests that matched no route.
func NewNotFoundError(msg string) error {
	return &Error{code: ErrCodeNotFound, message: msg}
}

// NewMalformedJSONError creates an error for request bodies that are not valid JSON.
func NewMalformedJSONError(msg string) error {
	return &Error{code: ErrCodeMalformedJSON, message: msg}
}

// WrapMalformedJSONError wraps a JSON decoding error.
func WrapMalformedJSONError(err error, msg string) error {
	return &Error{code: ErrCodeMalformedJSON, message: msg, wrapped: err}
}

// NewRequestTooLargeError creates a request too large error.
// Use this when the request body exceeds the maximum allowed size.
func NewRequestTooLargeError(msg string) error {
	return &Error{code: ErrCodeRequestTooLarge, message: msg}
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &Error{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewTimeoutError creates an error for requests that ran out of time.
func NewTimeoutError(msg string) error {
	return &Error{code: ErrCodeTimeout, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
func NewInternalError(msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
func WrapInternalError(err error, msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg, wrapped: err}
}
