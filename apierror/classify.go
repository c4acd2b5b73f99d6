// apierror/classify.go
package apierror

import (
	"fmt"
	"net/http"
)

// FromStatus maps a terminal transport failure to its error kind. It runs
// exactly once per dispatch, after retries are exhausted or a non-retryable
// status is observed; local validation failures never reach it.
func FromStatus(status int, body string) *Error {
	switch status {
	case http.StatusNotFound:
		err := NewNotFoundError(messageOr(body, "resource not found"))
		err.Status = status
		err.Body = body
		return err

	case http.StatusBadRequest:
		err := NewValidationError(messageOr(body, "request rejected by server"))
		err.Status = status
		err.Body = body
		return err

	case http.StatusUnauthorized:
		// Fixed message; the server body is kept for diagnostics but never
		// surfaced in the message.
		err := NewAuthenticationError()
		err.Status = status
		err.Body = body
		return err

	case http.StatusTooManyRequests:
		err := NewRateLimitExceededError()
		err.Status = status
		err.Body = body
		return err

	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		err := NewServiceUnavailableError(messageOr(body, "notification service unavailable"))
		err.Status = status
		err.Body = body
		return err

	default:
		err := NewClientError(fmt.Sprintf("unexpected status %d", status), nil)
		err.Status = status
		err.Body = body
		return err
	}
}

func messageOr(body, fallback string) string {
	if body == "" {
		return fallback
	}
	return body
}
