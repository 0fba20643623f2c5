// Package metrics defines the Prometheus collectors exported by the server
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "charsheet"

// HTTP holds the request collectors for the REST server
type HTTP struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTP creates the HTTP collectors and registers them with registerer.
// A nil registerer uses prometheus.DefaultRegisterer.
func NewHTTP(registerer prometheus.Registerer) *HTTP {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &HTTP{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"path", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
	}
	registerer.MustRegister(m.RequestsTotal, m.RequestDuration)
	return m
}

// Observe records one finished request
func (m *HTTP) Observe(path, method, status string, seconds float64) {
	m.RequestsTotal.WithLabelValues(path, method, status).Inc()
	m.RequestDuration.WithLabelValues(path, method).Observe(seconds)
}
