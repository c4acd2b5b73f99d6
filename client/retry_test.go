// client/retry_test.go
package client

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notification-client/internal/common/transport"
)

func TestRetryPolicy_DelayFor(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
	}

	assert.Equal(t, time.Second, policy.DelayFor(0))
	assert.Equal(t, 2*time.Second, policy.DelayFor(1))
	assert.Equal(t, 4*time.Second, policy.DelayFor(2))
	assert.Equal(t, 8*time.Second, policy.DelayFor(3))
	// Capped from here on.
	assert.Equal(t, 10*time.Second, policy.DelayFor(4))
	assert.Equal(t, 10*time.Second, policy.DelayFor(5))
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: 10 * time.Second}

	transient := &transport.StatusError{Status: http.StatusServiceUnavailable, Body: "down"}
	structural := &transport.StatusError{Status: http.StatusBadRequest, Body: "bad"}

	tests := []struct {
		name    string
		attempt int
		err     error
		want    bool
	}{
		{"503 first attempt", 0, transient, true},
		{"503 second attempt", 1, transient, true},
		{"503 last attempt", 2, transient, false},
		{"400 never retried", 0, structural, false},
		{"404 never retried", 0, &transport.StatusError{Status: http.StatusNotFound}, false},
		{"408 retried", 0, &transport.StatusError{Status: http.StatusRequestTimeout}, true},
		{"500 retried", 0, &transport.StatusError{Status: http.StatusInternalServerError}, true},
		{"connection refused retried", 0, errors.New("dial tcp 127.0.0.1:9: connect: connection refused"), true},
		{"connection reset retried", 0, errors.New("read tcp: connection reset by peer"), true},
		{"plain error not retried", 0, errors.New("something else"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.ShouldRetry(tt.attempt, tt.err))
		})
	}
}

func TestRetryPolicy_SingleAttempt(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 1, BaseDelay: time.Second, MaxDelay: 10 * time.Second}
	transient := &transport.StatusError{Status: http.StatusServiceUnavailable}
	assert.False(t, policy.ShouldRetry(0, transient))
}
