package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the portal-wide Prometheus metrics. Domain packages keep their
// own metric sets; this covers the HTTP surface.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	Logins          *prometheus.CounterVec
}

// New creates and registers all portal-level Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sabha_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),

		Logins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sabha_logins_total",
			Help: "Total login attempts by result",
		}, []string{"result"}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
	}
}

// IncrementLogins records a login attempt outcome ("ok" or "error").
func (m *Metrics) IncrementLogins(result string) {
	if m != nil {
		m.Logins.WithLabelValues(result).Inc()
	}
}
