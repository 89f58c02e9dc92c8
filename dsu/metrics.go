package dsu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by Instrumented.
// One Metrics value can be shared by many sets; series are split by the
// strategy label.
type Metrics struct {
	// OperationsTotal counts calls by strategy, operation (find, connected,
	// union) and status (ok, error).
	OperationsTotal *prometheus.CounterVec
	// MergesTotal counts Union calls that actually joined two sets.
	MergesTotal *prometheus.CounterVec
	// Sets is the current number of disjoint sets.
	Sets *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg. A nil reg yields working
// but unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		OperationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unionfind_operations_total",
				Help: "Total number of disjoint-set operations",
			},
			[]string{"strategy", "operation", "status"},
		),
		MergesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "unionfind_merges_total",
				Help: "Total number of unions that joined two distinct sets",
			},
			[]string{"strategy"},
		),
		Sets: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "unionfind_sets",
				Help: "Current number of disjoint sets",
			},
			[]string{"strategy"},
		),
	}
}

func (m *Metrics) observe(strategy, op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.OperationsTotal.WithLabelValues(strategy, op, status).Inc()
}
