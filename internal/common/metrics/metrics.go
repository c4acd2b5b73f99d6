// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_client_requests_total",
			Help: "Total number of API requests issued by the client",
		},
		[]string{"operation"},
	)

	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_client_retries_total",
			Help: "Total number of retry attempts",
		},
		[]string{"operation"},
	)

	FailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_client_failures_total",
			Help: "Total number of requests that ended in a typed error",
		},
		[]string{"operation", "error_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "notification_client_request_duration_seconds",
			Help: "Duration of API requests including retries",
		},
		[]string{"operation"},
	)
)
