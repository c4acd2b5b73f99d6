// client/retry.go
package client

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"notification-client/internal/common/transport"
)

// RetryPolicy decides whether a failed attempt is worth repeating and how
// long to wait before the next one. The policy is uniform across all write
// operations; read operations are never retried.
type RetryPolicy struct {
	// MaxAttempts bounds the total number of attempts, first try included.
	MaxAttempts int

	// BaseDelay is the wait before the first retry; each further retry
	// doubles it.
	BaseDelay time.Duration

	// MaxDelay caps the backoff.
	MaxDelay time.Duration
}

// ShouldRetry reports whether another attempt should follow the given failed
// one. attempt is zero-based: 0 is the first try.
func (p RetryPolicy) ShouldRetry(attempt int, err error) bool {
	return attempt < p.MaxAttempts-1 && isTransient(err)
}

// DelayFor returns the backoff after the given zero-based attempt.
func (p RetryPolicy) DelayFor(attempt int) time.Duration {
	delay := p.BaseDelay * time.Duration(1<<attempt)
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// isTransient reports whether the failure is expected to self-resolve: a 5xx
// or request-timeout status, or a connection-level error. Any other 4xx is
// structural and resending the same payload will not help.
func isTransient(err error) bool {
	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status >= 500 || statusErr.Status == http.StatusRequestTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"unexpected eof",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
