package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("writing metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("writing metric: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.GetPrometheusRegistry() == nil {
		t.Fatal("expected underlying prometheus registry")
	}

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	a := DefaultRegistry()
	b := DefaultRegistry()
	if a != b {
		t.Error("DefaultRegistry should return the same instance")
	}
}

func TestRecordSpaceOperation(t *testing.T) {
	r := NewRegistry()

	r.RecordSpaceOperation("insert_node", "success", 5*time.Microsecond)
	r.RecordSpaceOperation("insert_node", "success", 7*time.Microsecond)
	r.RecordSpaceOperation("insert_node", "error", time.Microsecond)

	got := counterValue(t, r.SpaceOperationsTotal.WithLabelValues("insert_node", "success"))
	if got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	got = counterValue(t, r.SpaceOperationsTotal.WithLabelValues("insert_node", "error"))
	if got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}

func TestUpdateSpaceTotals(t *testing.T) {
	r := NewRegistry()

	r.UpdateSpaceTotals(120, 300, 3)

	if got := gaugeValue(t, r.SpaceNodesTotal); got != 120 {
		t.Errorf("nodes gauge = %v, want 120", got)
	}
	if got := gaugeValue(t, r.SpaceReferencesTotal); got != 300 {
		t.Errorf("references gauge = %v, want 300", got)
	}
	if got := gaugeValue(t, r.SpaceNamespacesTotal); got != 3 {
		t.Errorf("namespaces gauge = %v, want 3", got)
	}
}

func TestRecordFinalize(t *testing.T) {
	r := NewRegistry()

	r.RecordFinalize("failed", 10*time.Millisecond, map[string]int{
		"dangling_target":      3,
		"unresolved_data_type": 1,
	})

	got := counterValue(t, r.StructuralErrorsTotal.WithLabelValues("dangling_target"))
	if got != 3 {
		t.Errorf("dangling_target count = %v, want 3", got)
	}
	got = counterValue(t, r.StructuralErrorsTotal.WithLabelValues("unresolved_data_type"))
	if got != 1 {
		t.Errorf("unresolved_data_type count = %v, want 1", got)
	}
	got = counterValue(t, r.FinalizeRunsTotal.WithLabelValues("failed"))
	if got != 1 {
		t.Errorf("failed runs = %v, want 1", got)
	}
}

func TestRecordImportCounters(t *testing.T) {
	r := NewRegistry()

	r.RecordImportFile("success")
	r.RecordNodeCreated("Object")
	r.RecordNodeCreated("Object")
	r.RecordNodeCreated("Variable")
	r.ImportReferencesCreated.Inc()
	r.RecordDiagnostic("warning")

	if got := counterValue(t, r.ImportNodesCreated.WithLabelValues("Object")); got != 2 {
		t.Errorf("Object nodes created = %v, want 2", got)
	}
	if got := counterValue(t, r.ImportNodesCreated.WithLabelValues("Variable")); got != 1 {
		t.Errorf("Variable nodes created = %v, want 1", got)
	}
	if got := counterValue(t, r.ImportReferencesCreated); got != 1 {
		t.Errorf("references created = %v, want 1", got)
	}
	if got := counterValue(t, r.ImportDiagnosticsTotal.WithLabelValues("warning")); got != 1 {
		t.Errorf("warning diagnostics = %v, want 1", got)
	}
}

func TestUpdateSystemMetrics(t *testing.T) {
	r := NewRegistry()

	r.UpdateSystemMetrics(time.Now().Add(-2 * time.Second))

	if got := gaugeValue(t, r.UptimeSeconds); got < 1 {
		t.Errorf("uptime = %v, want >= 1", got)
	}
	if got := gaugeValue(t, r.GoRoutines); got < 1 {
		t.Errorf("goroutines = %v, want >= 1", got)
	}
	if got := gaugeValue(t, r.MemoryAllocBytes); got <= 0 {
		t.Errorf("alloc bytes = %v, want > 0", got)
	}
}
