package nodeset

import (
	"time"
)

// Severity of an import diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one non-fatal problem found while importing a
// document. The offending element is skipped and the import continues.
type Diagnostic struct {
	Severity Severity
	Stage    Stage
	NodeID   string // source element's NodeId attribute, verbatim
	Message  string
}

// Report summarizes one imported document.
type Report struct {
	File            string
	ModelURI        string
	NamespacesAdded []string
	NodesCreated    int
	NodesSkipped    int
	RefsCreated     int
	RefsSkipped     int
	Deferred        int // references whose target was absent at creation time
	Diagnostics     []Diagnostic
	Duration        time.Duration

	truncated bool
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r *Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) addDiagnostic(max int, d Diagnostic) {
	if max > 0 && len(r.Diagnostics) >= max {
		r.truncated = true
		return
	}
	r.Diagnostics = append(r.Diagnostics, d)
}

// Truncated reports whether diagnostics were dropped due to the
// configured cap.
func (r *Report) Truncated() bool {
	return r.truncated
}
