// apierror/errors_test.go
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Status Classification
// ==========================

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  Code
		retryable bool
	}{
		{"not found", http.StatusNotFound, `{"error":"no such notification"}`, CodeNotFound, false},
		{"bad request", http.StatusBadRequest, "recipient missing", CodeValidation, false},
		{"unauthorized", http.StatusUnauthorized, "token expired", CodeAuthentication, false},
		{"rate limited", http.StatusTooManyRequests, "", CodeRateLimitExceeded, false},
		{"service unavailable", http.StatusServiceUnavailable, "", CodeServiceUnavailable, true},
		{"bad gateway", http.StatusBadGateway, "", CodeServiceUnavailable, true},
		{"gateway timeout", http.StatusGatewayTimeout, "", CodeServiceUnavailable, true},
		{"unmapped 4xx", http.StatusTeapot, "short and stout", CodeClient, false},
		{"unmapped 5xx", http.StatusInternalServerError, "boom", CodeClient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(tt.status, tt.body)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.retryable, err.Retryable)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, tt.body, err.Body)
			assert.False(t, err.Timestamp.IsZero())
		})
	}
}

func TestFromStatus_AuthenticationMessageIsFixed(t *testing.T) {
	// The server body never leaks into authentication error messages.
	err := FromStatus(http.StatusUnauthorized, "secret internal detail")
	assert.Equal(t, "invalid or missing API key", err.Message)
	assert.NotContains(t, err.Error(), "secret internal detail")
	assert.Equal(t, "secret internal detail", err.Body)
}

func TestFromStatus_BodyBecomesMessage(t *testing.T) {
	err := FromStatus(http.StatusBadRequest, "templateId is unknown")
	assert.Equal(t, "templateId is unknown", err.Message)

	err = FromStatus(http.StatusBadRequest, "")
	assert.Equal(t, "request rejected by server", err.Message)
}

// ==========================
// Error Semantics
// ==========================

func TestError_Format(t *testing.T) {
	local := NewValidationError("recipient is required")
	assert.Equal(t, "NotificationError[VALIDATION_FAILED]: recipient is required", local.Error())

	remote := FromStatus(http.StatusNotFound, "gone")
	assert.Equal(t, "NotificationError[NOTIFICATION_NOT_FOUND]: gone (status 404)", remote.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewClientError("request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := NewServiceUnavailableError("upstream down")
	wrapped := fmt.Errorf("sending notification: %w", err)

	assert.True(t, IsCode(err, CodeServiceUnavailable))
	assert.True(t, IsCode(wrapped, CodeServiceUnavailable))
	assert.False(t, IsCode(err, CodeValidation))
	assert.False(t, IsCode(errors.New("plain"), CodeServiceUnavailable))
	assert.False(t, IsCode(nil, CodeServiceUnavailable))
}

func TestNewAuthenticationError_NeverRetryable(t *testing.T) {
	err := NewAuthenticationError()
	assert.False(t, err.Retryable)
	assert.Equal(t, CodeAuthentication, err.Code)
}
