package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled by the facade",
		},
		[]string{"status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration, dominated by upstream gateway latency",
			Buckets: []float64{
				0.01, 0.02, 0.03, 0.05, 0.08, 0.12,
				0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5,
			},
		},
		[]string{"status", "method"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

func IncRequest(status, method string) {
	RequestsTotal.WithLabelValues(status, method).Inc()
}

func ObserveDuration(status, method string, seconds float64) {
	RequestDuration.WithLabelValues(status, method).Observe(seconds)
}
