package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// CartCommitsTotal tracks successful cart mutations by operation
	CartCommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_commits_total",
			Help: "Total number of committed cart mutations",
		},
		[]string{"operation"},
	)

	// ValidationFailuresTotal tracks rejected selection sets by error code
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selection_validation_failures_total",
			Help: "Total number of selection validation failures",
		},
		[]string{"code"},
	)
)
