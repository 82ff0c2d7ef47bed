package typetree

import "github.com/Andy3189/async-opcua/pkg/ua"

// Cycle is a detected HasSubtype cycle as a sequence of NodeIDs.
type Cycle []ua.NodeID

// DetectCycles finds all HasSubtype cycles among the given type nodes
// using DFS with three-color marking:
//
//   - WHITE: unvisited
//   - GRAY: currently visiting (on the recursion stack)
//   - BLACK: finished (all descendants explored)
//
// Meeting a GRAY node is a back edge, which is a cycle. Called by
// finalize-time validation; an empty result certifies acyclicity.
func (r *Resolver) DetectCycles(typeNodes []ua.NodeID) []Cycle {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[ua.NodeID]int, len(typeNodes))
	parent := make(map[ua.NodeID]ua.NodeID)
	var cycles []Cycle

	var visit func(id ua.NodeID)
	visit = func(id ua.NodeID) {
		color[id] = gray
		for _, child := range r.subtypesOf(id) {
			if child == id {
				cycles = append(cycles, Cycle{id})
				continue
			}
			switch color[child] {
			case white:
				parent[child] = id
				visit(child)
			case gray:
				cycles = append(cycles, extractCycle(child, id, parent))
			}
		}
		color[id] = black
	}

	for _, id := range typeNodes {
		if color[id] == white {
			visit(id)
		}
	}
	return cycles
}

// extractCycle reconstructs a cycle from parent pointers, given a back
// edge from end to start.
func extractCycle(start, end ua.NodeID, parent map[ua.NodeID]ua.NodeID) Cycle {
	cycle := Cycle{start}
	current := end
	for current != start {
		cycle = append(cycle, current)
		p, ok := parent[current]
		if !ok {
			break
		}
		current = p
	}
	return cycle
}
