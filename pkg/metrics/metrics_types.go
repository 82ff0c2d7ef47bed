package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Address space metrics
	SpaceNodesTotal        prometheus.Gauge
	SpaceReferencesTotal   prometheus.Gauge
	SpaceNamespacesTotal   prometheus.Gauge
	SpaceOperationsTotal   *prometheus.CounterVec
	SpaceOperationDuration *prometheus.HistogramVec

	// Import metrics
	ImportFilesTotal         *prometheus.CounterVec
	ImportStageDuration      *prometheus.HistogramVec
	ImportNodesCreated       *prometheus.CounterVec
	ImportReferencesCreated  prometheus.Counter
	ImportNodesSkipped       prometheus.Counter
	ImportDiagnosticsTotal   *prometheus.CounterVec
	ImportDeferredReferences prometheus.Gauge

	// Finalize metrics
	FinalizeRunsTotal       *prometheus.CounterVec
	FinalizeDuration        prometheus.Histogram
	StructuralErrorsTotal   *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initSpaceMetrics()
	r.initImportMetrics()
	r.initFinalizeMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
