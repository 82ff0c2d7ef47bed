package space

import (
	"sort"
	"time"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/logging"
	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

// Finalize validates the structural integrity of the address space and
// returns every violation found. A nil result means the space is
// consistent. Finalize is the required closing step after any import
// that used RefDeferred; running it on a consistent space is harmless.
//
// Checks performed:
//   - every reference endpoint resolves to an existing node
//   - every Variable and VariableType declares a data type that
//     resolves to a DataType node
//   - the type hierarchy contains no cycles
func (s *AddressSpace) Finalize() []StructuralError {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs []StructuralError
	errs = append(errs, s.checkReferences()...)
	errs = append(errs, s.checkDataTypes()...)
	errs = append(errs, s.checkHierarchy()...)

	status := "success"
	if len(errs) > 0 {
		status = "failed"
	}
	if s.m != nil {
		byKind := make(map[string]int)
		for _, e := range errs {
			byKind[e.Kind.String()]++
		}
		s.m.RecordFinalize(status, time.Since(start), byKind)
	}
	s.logger.Info("finalize complete",
		logging.String("status", status),
		logging.Int("structural_errors", len(errs)),
		logging.Latency(time.Since(start)),
	)
	return errs
}

func (s *AddressSpace) checkReferences() []StructuralError {
	var errs []StructuralError
	s.refs.Each(func(ref graph.Reference) bool {
		if _, ok := s.nodes[ref.Source]; !ok {
			r := ref
			errs = append(errs, StructuralError{
				Kind:      StructuralDanglingSource,
				NodeID:    ref.Source,
				Reference: &r,
			})
		}
		if _, ok := s.nodes[ref.Target]; !ok {
			r := ref
			errs = append(errs, StructuralError{
				Kind:      StructuralDanglingTarget,
				NodeID:    ref.Target,
				Reference: &r,
			})
		}
		return true
	})
	// Graph iteration order is not deterministic; keep reports stable.
	sort.Slice(errs, func(i, j int) bool {
		if c := errs[i].NodeID.Compare(errs[j].NodeID); c != 0 {
			return c < 0
		}
		if errs[i].Kind != errs[j].Kind {
			return errs[i].Kind < errs[j].Kind
		}
		ri, rj := errs[i].Reference, errs[j].Reference
		if c := ri.Source.Compare(rj.Source); c != 0 {
			return c < 0
		}
		if c := ri.Target.Compare(rj.Target); c != 0 {
			return c < 0
		}
		return ri.Type.Compare(rj.Type) < 0
	})
	return errs
}

func (s *AddressSpace) checkDataTypes() []StructuralError {
	var bad []ua.NodeID
	for id, n := range s.nodes {
		var dt ua.NodeID
		switch v := n.(type) {
		case *nodes.VariableNode:
			dt = v.DataType
		case *nodes.VariableTypeNode:
			dt = v.DataType
		default:
			continue
		}
		target, ok := s.nodes[dt]
		if !ok || target.NodeClass() != nodes.ClassDataType {
			bad = append(bad, id)
		}
	}
	// Map iteration order is random; keep reports stable.
	sort.Slice(bad, func(i, j int) bool { return bad[i].Compare(bad[j]) < 0 })

	errs := make([]StructuralError, 0, len(bad))
	for _, id := range bad {
		errs = append(errs, StructuralError{Kind: StructuralUnresolvedDataType, NodeID: id})
	}
	return errs
}

func (s *AddressSpace) checkHierarchy() []StructuralError {
	var typeNodes []ua.NodeID
	for id, n := range s.nodes {
		if n.NodeClass().IsType() {
			typeNodes = append(typeNodes, id)
		}
	}
	sort.Slice(typeNodes, func(i, j int) bool { return typeNodes[i].Compare(typeNodes[j]) < 0 })

	var errs []StructuralError
	for _, cycle := range s.resolver.DetectCycles(typeNodes) {
		errs = append(errs, StructuralError{
			Kind:  StructuralHierarchyCycle,
			Cycle: cycle,
		})
	}
	return errs
}
