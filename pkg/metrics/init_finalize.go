package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initFinalizeMetrics() {
	r.FinalizeRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_finalize_runs_total",
			Help: "Total number of finalize runs",
		},
		[]string{"status"},
	)

	r.FinalizeDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "opcua_finalize_duration_seconds",
			Help:    "Finalize run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.StructuralErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_structural_errors_total",
			Help: "Structural errors found at finalize, by kind",
		},
		[]string{"kind"},
	)
}
