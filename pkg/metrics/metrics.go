package metrics

import (
	"runtime"
	"time"
)

// RecordSpaceOperation records an address-space mutation or query
func (r *Registry) RecordSpaceOperation(operation, status string, duration time.Duration) {
	r.SpaceOperationsTotal.WithLabelValues(operation, status).Inc()
	r.SpaceOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateSpaceTotals updates the address-space size gauges
func (r *Registry) UpdateSpaceTotals(nodes, references, namespaces int) {
	r.SpaceNodesTotal.Set(float64(nodes))
	r.SpaceReferencesTotal.Set(float64(references))
	r.SpaceNamespacesTotal.Set(float64(namespaces))
}

// RecordImportFile records one imported node set document
func (r *Registry) RecordImportFile(status string) {
	r.ImportFilesTotal.WithLabelValues(status).Inc()
}

// RecordImportStage records the duration of one import pipeline stage
func (r *Registry) RecordImportStage(stage string, duration time.Duration) {
	r.ImportStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordNodeCreated records a node created during import
func (r *Registry) RecordNodeCreated(class string) {
	r.ImportNodesCreated.WithLabelValues(class).Inc()
}

// RecordDiagnostic records a non-fatal import diagnostic
func (r *Registry) RecordDiagnostic(severity string) {
	r.ImportDiagnosticsTotal.WithLabelValues(severity).Inc()
}

// RecordFinalize records one finalize run and its structural errors
func (r *Registry) RecordFinalize(status string, duration time.Duration, errorsByKind map[string]int) {
	r.FinalizeRunsTotal.WithLabelValues(status).Inc()
	r.FinalizeDuration.Observe(duration.Seconds())
	for kind, n := range errorsByKind {
		r.StructuralErrorsTotal.WithLabelValues(kind).Add(float64(n))
	}
}

// UpdateSystemMetrics updates system-related metrics
func (r *Registry) UpdateSystemMetrics(startTime time.Time) {
	r.UptimeSeconds.Set(time.Since(startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
