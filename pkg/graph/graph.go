// Package graph holds the typed reference edges of an address space,
// indexed by both endpoints so forward and inverse browsing from any
// node is a single map lookup.
package graph

import "github.com/Andy3189/async-opcua/pkg/ua"

// Direction selects reference directions in queries.
type Direction uint8

const (
	DirectionAny Direction = iota
	DirectionForward
	DirectionInverse
)

// Reference is a typed, directed edge between two nodes. A forward
// reference recorded at the source implies the semantically inverse
// reference at the target; the direction is stored explicitly so both
// traversals are cheap.
type Reference struct {
	Source    ua.NodeID
	Target    ua.NodeID
	Type      ua.NodeID
	IsForward bool
}

// Filter narrows reference queries. The zero value matches everything.
type Filter struct {
	// Type restricts to one reference type; the null NodeID matches all.
	Type ua.NodeID
	// Direction restricts to forward or inverse references.
	Direction Direction
}

func (f Filter) matches(ref Reference) bool {
	if !f.Type.IsNull() && ref.Type != f.Type {
		return false
	}
	switch f.Direction {
	case DirectionForward:
		return ref.IsForward
	case DirectionInverse:
		return !ref.IsForward
	}
	return true
}

// Graph is the dual-indexed edge set. Incident references keep their
// insertion order, since browse order is observable by clients. Graph
// is not safe for concurrent mutation; the owning address space
// serializes writers.
type Graph struct {
	bySource map[ua.NodeID][]Reference
	byTarget map[ua.NodeID][]Reference
	count    int
}

// New creates an empty reference graph.
func New() *Graph {
	return &Graph{
		bySource: make(map[ua.NodeID][]Reference),
		byTarget: make(map[ua.NodeID][]Reference),
	}
}

// Add inserts a reference. A duplicate (source, target, type,
// direction) tuple is a no-op rather than an error: import files
// legitimately re-declare references across passes and files. Returns
// false when the edge was already present.
func (g *Graph) Add(ref Reference) bool {
	for _, existing := range g.bySource[ref.Source] {
		if existing == ref {
			return false
		}
	}
	g.bySource[ref.Source] = append(g.bySource[ref.Source], ref)
	g.byTarget[ref.Target] = append(g.byTarget[ref.Target], ref)
	g.count++
	return true
}

// Remove deletes every reference matching (source, target, type) in
// either direction. Returns the number of edges removed. Removal
// preserves the relative order of the remaining incident references.
func (g *Graph) Remove(source, target, typeID ua.NodeID) int {
	match := func(ref Reference) bool {
		return ref.Source == source && ref.Target == target && ref.Type == typeID
	}
	removed := g.removeMatching(g.bySource, source, match)
	g.removeMatching(g.byTarget, target, match)
	g.count -= removed
	return removed
}

// RemoveIncident deletes every reference with the given node as either
// endpoint. Used by cascade deletion. Returns the number removed.
func (g *Graph) RemoveIncident(id ua.NodeID) int {
	removed := 0
	for _, ref := range g.bySource[id] {
		if ref.Target != id {
			g.removeMatchingOne(g.byTarget, ref.Target, ref)
		}
		removed++
	}
	delete(g.bySource, id)
	for _, ref := range g.byTarget[id] {
		// Self-loops were already counted above.
		if ref.Source == id {
			continue
		}
		g.removeMatchingOne(g.bySource, ref.Source, ref)
		removed++
	}
	delete(g.byTarget, id)
	g.count -= removed
	return removed
}

func (g *Graph) removeMatching(index map[ua.NodeID][]Reference, key ua.NodeID, match func(Reference) bool) int {
	refs := index[key]
	kept := refs[:0]
	removed := 0
	for _, ref := range refs {
		if match(ref) {
			removed++
			continue
		}
		kept = append(kept, ref)
	}
	if len(kept) == 0 {
		delete(index, key)
	} else {
		index[key] = kept
	}
	return removed
}

func (g *Graph) removeMatchingOne(index map[ua.NodeID][]Reference, key ua.NodeID, ref Reference) {
	g.removeMatching(index, key, func(r Reference) bool { return r == ref })
}

// From returns the references whose source is id, in insertion order.
func (g *Graph) From(id ua.NodeID, filter Filter) []Reference {
	return filterRefs(g.bySource[id], filter)
}

// To returns the references whose target is id, in insertion order.
func (g *Graph) To(id ua.NodeID, filter Filter) []Reference {
	return filterRefs(g.byTarget[id], filter)
}

func filterRefs(refs []Reference, filter Filter) []Reference {
	out := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		if filter.matches(ref) {
			out = append(out, ref)
		}
	}
	return out
}

// Count returns the number of stored edges.
func (g *Graph) Count() int {
	return g.count
}

// Each calls fn for every stored edge. Iteration stops early when fn
// returns false. Map order is unspecified, but each edge is visited
// exactly once.
func (g *Graph) Each(fn func(Reference) bool) {
	for _, refs := range g.bySource {
		for _, ref := range refs {
			if !fn(ref) {
				return
			}
		}
	}
}
