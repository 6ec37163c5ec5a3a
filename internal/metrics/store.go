package metrics

import "github.com/prometheus/client_golang/prometheus"

// Store Prometheus metrics.
var (
	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docgate",
			Name:      "store_requests_total",
			Help:      "Total number of document store requests",
		},
		[]string{"op", "outcome"}, // outcome: ok, rejected, transport_error
	)

	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docgate",
			Name:      "store_request_duration_seconds",
			Help:      "Document store request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"op"},
	)
)

var storeMetricsRegistered bool

// RegisterStoreMetrics registers Prometheus store metrics. Must be called once from main.
func RegisterStoreMetrics() {
	if storeMetricsRegistered {
		return
	}
	prometheus.MustRegister(StoreRequestsTotal)
	prometheus.MustRegister(StoreRequestDuration)
	storeMetricsRegistered = true
}
