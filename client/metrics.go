package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "school_client",
			Name:      "requests_total",
			Help:      "API requests by method and response status (\"error\" when no response).",
		},
		[]string{"method", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "school_client",
			Name:      "request_failures_total",
			Help:      "Failed API calls by error kind.",
		},
		[]string{"kind"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "school_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
