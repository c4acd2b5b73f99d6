// Package apierror defines the typed error taxonomy surfaced by the
// notification client: local validation failures, classified transport
// failures, and a generic catch-all that keeps the original status and body
// for diagnostics.
package apierror

import (
	"errors"
	"fmt"
	"time"
)

// Code identifies the error kind.
type Code string

const (
	CodeValidation         Code = "VALIDATION_FAILED"
	CodeNotFound           Code = "NOTIFICATION_NOT_FOUND"
	CodeAuthentication     Code = "AUTHENTICATION_FAILED"
	CodeRateLimitExceeded  Code = "RATE_LIMIT_EXCEEDED"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeClient             Code = "CLIENT_ERROR"
)

// authenticationMessage is the fixed message for 401 responses. Server detail
// is never echoed for authentication failures.
const authenticationMessage = "invalid or missing API key"

// Error is a structured client error. Status and Body hold the original
// transport failure when the error came off the wire; both are zero for
// local validation failures.
type Error struct {
	Code      Code
	Message   string
	Status    int
	Body      string
	Retryable bool
	Timestamp time.Time
	cause     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("NotificationError[%s]: %s (status %d)", e.Code, e.Message, e.Status)
	}
	return fmt.Sprintf("NotificationError[%s]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code Code) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// NewValidationError creates a non-retryable validation error. Used both for
// local pre-flight failures and server-reported 400s.
func NewValidationError(message string) *Error {
	return &Error{
		Code:      CodeValidation,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable lookup failure.
func NewNotFoundError(message string) *Error {
	return &Error{
		Code:      CodeNotFound,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthenticationError creates a non-retryable authentication failure with
// the fixed credential message.
func NewAuthenticationError() *Error {
	return &Error{
		Code:      CodeAuthentication,
		Message:   authenticationMessage,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitExceededError creates a non-retryable rate limit failure.
func NewRateLimitExceededError() *Error {
	return &Error{
		Code:      CodeRateLimitExceeded,
		Message:   "rate limit exceeded",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewServiceUnavailableError creates a retryable upstream availability
// failure.
func NewServiceUnavailableError(message string) *Error {
	return &Error{
		Code:      CodeServiceUnavailable,
		Message:   message,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewClientError creates the generic catch-all, wrapping the original
// failure.
func NewClientError(message string, cause error) *Error {
	return &Error{
		Code:      CodeClient,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}
