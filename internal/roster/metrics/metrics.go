package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the roster module.
type Metrics struct {
	// Roster load outcomes ("ok", "error")
	Loads *prometheus.CounterVec

	// Mutation outcomes by operation ("delete", "edit") and result
	Mutations *prometheus.CounterVec

	// CSV exports performed
	Exports prometheus.Counter
}

// New creates a new Metrics instance with all roster metrics registered.
func New() *Metrics {
	return &Metrics{
		Loads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sabha_roster_loads_total",
			Help: "Total roster load attempts by result",
		}, []string{"result"}),

		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sabha_roster_mutations_total",
			Help: "Total roster mutations by operation and result",
		}, []string{"op", "result"}),

		Exports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sabha_roster_csv_exports_total",
			Help: "Total CSV exports of the filtered roster view",
		}),
	}
}

// IncrementLoad records a roster load outcome.
func (m *Metrics) IncrementLoad(result string) {
	if m != nil {
		m.Loads.WithLabelValues(result).Inc()
	}
}

// IncrementMutation records a mutation outcome.
func (m *Metrics) IncrementMutation(op, result string) {
	if m != nil {
		m.Mutations.WithLabelValues(op, result).Inc()
	}
}

// IncrementExport records one CSV export.
func (m *Metrics) IncrementExport() {
	if m != nil {
		m.Exports.Inc()
	}
}
