package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSpaceMetrics() {
	r.SpaceNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "opcua_space_nodes_total",
			Help: "Total number of nodes in the address space",
		},
	)

	r.SpaceReferencesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "opcua_space_references_total",
			Help: "Total number of references in the address space",
		},
	)

	r.SpaceNamespacesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "opcua_space_namespaces_total",
			Help: "Number of registered namespace URIs",
		},
	)

	r.SpaceOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "opcua_space_operations_total",
			Help: "Total number of address-space operations",
		},
		[]string{"operation", "status"},
	)

	r.SpaceOperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "opcua_space_operation_duration_seconds",
			Help:    "Address-space operation duration in seconds",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"operation"},
	)
}
