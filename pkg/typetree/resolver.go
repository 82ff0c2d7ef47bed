// Package typetree answers subtype and supertype queries over the
// HasSubtype edges of a reference graph. It never mutates the graph;
// the address space owns all structure.
package typetree

import (
	"errors"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

// ErrHierarchyCycle is reported when a HasSubtype walk revisits a node.
// Acyclicity is an address-space invariant, but malformed import input
// can violate it before finalize-time validation catches it, so every
// walk carries a cycle guard.
var ErrHierarchyCycle = errors.New("type hierarchy cycle")

// NodeInfo is the slice of the address space the resolver needs:
// class and browse name lookups by NodeID.
type NodeInfo interface {
	NodeClassOf(ua.NodeID) (nodes.NodeClass, bool)
	BrowseNameOf(ua.NodeID) (ua.QualifiedName, bool)
}

// Resolver walks the HasSubtype subgraph of a reference graph.
type Resolver struct {
	graph *graph.Graph
	info  NodeInfo
}

// New creates a resolver over the given graph and node table.
func New(g *graph.Graph, info NodeInfo) *Resolver {
	return &Resolver{graph: g, info: info}
}

// SupertypeOf returns the direct supertype of a type node. A HasSubtype
// edge may be recorded forward at the parent or inverse at the child;
// both encodings are honored.
func (r *Resolver) SupertypeOf(id ua.NodeID) (ua.NodeID, bool) {
	for _, ref := range r.graph.To(id, graph.Filter{Type: ua.IDHasSubtype, Direction: graph.DirectionForward}) {
		return ref.Source, true
	}
	for _, ref := range r.graph.From(id, graph.Filter{Type: ua.IDHasSubtype, Direction: graph.DirectionInverse}) {
		return ref.Target, true
	}
	return ua.NodeID{}, false
}

// subtypesOf returns the direct subtypes of a type node in edge
// insertion order, so repeated traversals yield the same sequence.
func (r *Resolver) subtypesOf(id ua.NodeID) []ua.NodeID {
	var out []ua.NodeID
	for _, ref := range r.graph.From(id, graph.Filter{Type: ua.IDHasSubtype, Direction: graph.DirectionForward}) {
		out = append(out, ref.Target)
	}
	for _, ref := range r.graph.To(id, graph.Filter{Type: ua.IDHasSubtype, Direction: graph.DirectionInverse}) {
		out = append(out, ref.Source)
	}
	return out
}

// IsSubtypeOf reports whether candidate is ancestor or one of its
// descendants, i.e. subtype in the OPC UA sense (a type is a subtype of
// itself). The walk follows the supertype chain from candidate and
// terminates on a cycle.
func (r *Resolver) IsSubtypeOf(candidate, ancestor ua.NodeID) bool {
	visited := make(map[ua.NodeID]struct{})
	node := candidate
	for {
		if node == ancestor {
			return true
		}
		if class, ok := r.info.NodeClassOf(node); ok && !class.IsType() {
			return false
		}
		if _, seen := visited[node]; seen {
			return false
		}
		visited[node] = struct{}{}
		parent, ok := r.SupertypeOf(node)
		if !ok {
			return false
		}
		node = parent
	}
}

// SubtypeIterator lazily yields the descendants of a type node in
// breadth-first order. The order is deterministic: re-querying yields
// the same sequence as long as the graph is unchanged.
type SubtypeIterator struct {
	resolver *Resolver
	frontier []ua.NodeID
	visited  map[ua.NodeID]struct{}
	err      error
}

// AllSubtypesOf starts a breadth-first traversal of the descendants of
// root. The root itself is not yielded.
func (r *Resolver) AllSubtypesOf(root ua.NodeID) *SubtypeIterator {
	it := &SubtypeIterator{
		resolver: r,
		visited:  map[ua.NodeID]struct{}{root: {}},
	}
	it.frontier = append(it.frontier, r.subtypesOf(root)...)
	return it
}

// Next returns the next subtype. It returns false when the traversal is
// exhausted or a cycle was detected; check Err afterwards.
func (it *SubtypeIterator) Next() (ua.NodeID, bool) {
	for it.err == nil && len(it.frontier) > 0 {
		node := it.frontier[0]
		it.frontier = it.frontier[1:]
		if _, seen := it.visited[node]; seen {
			// A node reached twice is either a multi-parent diamond
			// (skippable duplicate) or a genuine cycle back into the
			// traversal. Only the latter is fatal.
			if it.resolver.inCycle(node) {
				it.err = ErrHierarchyCycle
				return ua.NodeID{}, false
			}
			continue
		}
		it.visited[node] = struct{}{}
		it.frontier = append(it.frontier, it.resolver.subtypesOf(node)...)
		return node, true
	}
	return ua.NodeID{}, false
}

// inCycle reports whether id can reach itself through subtype edges.
// Walking downward sees every parent's edges, so a node on a cycle is
// always found again even when its first supertype chain exits the
// cycle; a diamond node never reaches itself in an acyclic hierarchy.
func (r *Resolver) inCycle(id ua.NodeID) bool {
	visited := make(map[ua.NodeID]struct{})
	stack := r.subtypesOf(id)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == id {
			return true
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		stack = append(stack, r.subtypesOf(node)...)
	}
	return false
}

// Err returns the structural error that stopped the traversal, if any.
func (it *SubtypeIterator) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *SubtypeIterator) Collect() ([]ua.NodeID, error) {
	var out []ua.NodeID
	for {
		id, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, id)
	}
}

// FindTypeProperty resolves a property of a type by browse path,
// following HasProperty and HasComponent references from the type node.
// Used by event filtering and browse-path resolution in the consuming
// runtime.
func (r *Resolver) FindTypeProperty(typeID ua.NodeID, path []ua.QualifiedName) (ua.NodeID, bool) {
	node := typeID
	for _, name := range path {
		found := false
		for _, refType := range []ua.NodeID{ua.IDHasProperty, ua.IDHasComponent} {
			for _, ref := range r.graph.From(node, graph.Filter{Type: refType, Direction: graph.DirectionForward}) {
				bn, ok := r.info.BrowseNameOf(ref.Target)
				if ok && bn == name {
					node = ref.Target
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return ua.NodeID{}, false
		}
	}
	return node, true
}
