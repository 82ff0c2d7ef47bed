package space

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

// Common sentinel errors for runtime mutations
var (
	ErrDuplicateNodeID      = errors.New("duplicate node id")
	ErrDanglingReference    = errors.New("dangling reference")
	ErrNodeNotFound         = errors.New("node not found")
	ErrReferentialIntegrity = errors.New("node is still referenced")
)

// SpaceError provides structured error information for address-space
// mutations.
type SpaceError struct {
	Op     string    // Operation that failed (e.g. "InsertNode", "DeleteNode")
	NodeID ua.NodeID // Node the operation targeted
	Cause  error
}

// Error implements the error interface.
func (e *SpaceError) Error() string {
	if e.NodeID.IsNull() {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.NodeID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SpaceError) Unwrap() error {
	return e.Cause
}

func opError(op string, id ua.NodeID, cause error) error {
	return &SpaceError{Op: op, NodeID: id, Cause: cause}
}

// StructuralErrorKind classifies finalize-time validation failures.
type StructuralErrorKind uint8

const (
	StructuralDanglingSource StructuralErrorKind = iota
	StructuralDanglingTarget
	StructuralUnresolvedDataType
	StructuralHierarchyCycle
)

// String returns the metric/report label of the kind.
func (k StructuralErrorKind) String() string {
	switch k {
	case StructuralDanglingSource:
		return "dangling_source"
	case StructuralDanglingTarget:
		return "dangling_target"
	case StructuralUnresolvedDataType:
		return "unresolved_data_type"
	case StructuralHierarchyCycle:
		return "hierarchy_cycle"
	default:
		return fmt.Sprintf("structural(%d)", uint8(k))
	}
}

// StructuralError is one finalize-time validation failure. Structural
// errors are aggregated per finalize run, never returned one at a time:
// the runtime wants the full damage report, not the first symptom.
type StructuralError struct {
	Kind      StructuralErrorKind
	NodeID    ua.NodeID        // offending node, when applicable
	Reference *graph.Reference // offending edge, for dangling kinds
	Cycle     []ua.NodeID      // members, for hierarchy cycles
}

// Error implements the error interface.
func (e StructuralError) Error() string {
	switch e.Kind {
	case StructuralDanglingSource:
		return fmt.Sprintf("reference %s -> %s (%s): source node does not exist",
			e.Reference.Source, e.Reference.Target, e.Reference.Type)
	case StructuralDanglingTarget:
		return fmt.Sprintf("reference %s -> %s (%s): target node does not exist",
			e.Reference.Source, e.Reference.Target, e.Reference.Type)
	case StructuralUnresolvedDataType:
		return fmt.Sprintf("node %s: declared data type does not resolve to a DataType node", e.NodeID)
	case StructuralHierarchyCycle:
		ids := make([]string, len(e.Cycle))
		for i, id := range e.Cycle {
			ids[i] = id.String()
		}
		return fmt.Sprintf("type hierarchy cycle: %s", strings.Join(ids, " -> "))
	default:
		return fmt.Sprintf("structural error on %s", e.NodeID)
	}
}
