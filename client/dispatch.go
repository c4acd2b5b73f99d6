// client/dispatch.go
package client

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"notification-client/apierror"
	"notification-client/internal/common/metrics"
	"notification-client/internal/common/transport"
)

// dispatch runs one logical API call: attempt, consult the retry policy on
// transient failures, wait out the backoff (interruptible by ctx), and on
// terminal failure classify once into a typed error. Successful responses are
// decoded into out and returned unmodified.
func (c *Client) dispatch(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}, retryable bool) error {
	timer := prometheus.NewTimer(metrics.RequestDuration.WithLabelValues(operation))
	defer timer.ObserveDuration()

	// At least one attempt always runs, even under a zero-valued policy.
	maxAttempts := 1
	if retryable && c.retry.MaxAttempts > 1 {
		maxAttempts = c.retry.MaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		metrics.RequestsTotal.WithLabelValues(operation).Inc()

		err := c.transport.Do(ctx, method, path, query, body, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable || !c.retry.ShouldRetry(attempt, err) {
			break
		}

		delay := c.retry.DelayFor(attempt)
		c.log.Warn("retrying request", map[string]interface{}{
			"operation": operation,
			"attempt":   attempt + 1,
			"delay":     delay.String(),
		})
		metrics.RetriesTotal.WithLabelValues(operation).Inc()

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			typed := apierror.NewClientError("dispatch cancelled", ctx.Err())
			metrics.FailuresTotal.WithLabelValues(operation, string(typed.Code)).Inc()
			return typed
		}
	}

	typed := classify(lastErr)
	metrics.FailuresTotal.WithLabelValues(operation, string(typed.Code)).Inc()
	c.log.WithError(typed).Error("request failed", map[string]interface{}{
		"operation": operation,
	})
	return typed
}

// classify maps the terminal transport failure to the error taxonomy. It runs
// exactly once per dispatch.
func classify(err error) *apierror.Error {
	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		return apierror.FromStatus(statusErr.Status, statusErr.Body)
	}
	return apierror.NewClientError("request failed", err)
}
