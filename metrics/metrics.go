// Package metrics registers the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests requests served, by route and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served.",
	}, []string{"method", "route", "status"})

	// HTTPDuration request latency
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PaymentMutations successful create/update/delete operations
	PaymentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pagamentos",
		Name:      "payment_mutations_total",
		Help:      "Successful payment mutations.",
	}, []string{"op"})

	// Exports generated documents by kind (xlsx, pdf)
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pagamentos",
		Name:      "exports_total",
		Help:      "Generated export documents.",
	}, []string{"kind"})
)
