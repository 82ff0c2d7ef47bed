package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initImportMetrics() {
	r.ImportFilesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_import_files_total",
			Help: "Total number of node set documents imported",
		},
		[]string{"status"},
	)

	r.ImportStageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "opcua_import_stage_duration_seconds",
			Help:    "Import pipeline stage duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)

	r.ImportNodesCreated = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_import_nodes_created_total",
			Help: "Nodes created during import, by node class",
		},
		[]string{"class"},
	)

	r.ImportReferencesCreated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "opcua_import_references_created_total",
			Help: "References created during import",
		},
	)

	r.ImportNodesSkipped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "opcua_import_nodes_skipped_total",
			Help: "Nodes skipped during import because they already existed",
		},
	)

	r.ImportDiagnosticsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_import_diagnostics_total",
			Help: "Non-fatal diagnostics recorded during import",
		},
		[]string{"severity"},
	)

	r.ImportDeferredReferences = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "opcua_import_deferred_references",
			Help: "References whose target was not yet present when created",
		},
	)
}
