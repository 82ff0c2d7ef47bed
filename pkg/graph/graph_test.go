package graph

import (
	"testing"

	"github.com/Andy3189/async-opcua/pkg/ua"
)

func ref(src, tgt uint32, typeID ua.NodeID, forward bool) Reference {
	return Reference{
		Source:    ua.NewNumericNodeID(1, src),
		Target:    ua.NewNumericNodeID(1, tgt),
		Type:      typeID,
		IsForward: forward,
	}
}

func TestGraph_AddAndQuery(t *testing.T) {
	g := New()

	r := ref(1000, 2000, ua.IDHasComponent, true)
	if !g.Add(r) {
		t.Fatal("first Add should report insertion")
	}
	if g.Count() != 1 {
		t.Fatalf("Count = %d, want 1", g.Count())
	}

	from := g.From(ua.NewNumericNodeID(1, 1000), Filter{})
	if len(from) != 1 || from[0] != r {
		t.Errorf("From(source) = %v, want [%v]", from, r)
	}

	to := g.To(ua.NewNumericNodeID(1, 2000), Filter{})
	if len(to) != 1 || to[0] != r {
		t.Errorf("To(target) = %v, want [%v]", to, r)
	}

	if got := g.From(ua.NewNumericNodeID(1, 2000), Filter{}); len(got) != 0 {
		t.Errorf("From(target) = %v, want empty", got)
	}
}

func TestGraph_DuplicateAddIsNoOp(t *testing.T) {
	g := New()
	r := ref(1, 2, ua.IDHasComponent, true)

	g.Add(r)
	if g.Add(r) {
		t.Error("duplicate Add should report no insertion")
	}
	if g.Count() != 1 {
		t.Errorf("Count after duplicate Add = %d, want 1", g.Count())
	}

	// Same tuple with the opposite direction is a distinct edge.
	inverse := r
	inverse.IsForward = false
	if !g.Add(inverse) {
		t.Error("opposite-direction edge should insert")
	}
	if g.Count() != 2 {
		t.Errorf("Count = %d, want 2", g.Count())
	}
}

func TestGraph_FilterByTypeAndDirection(t *testing.T) {
	g := New()
	g.Add(ref(1, 2, ua.IDHasComponent, true))
	g.Add(ref(1, 3, ua.IDHasProperty, true))
	g.Add(ref(1, 4, ua.IDHasComponent, false))

	source := ua.NewNumericNodeID(1, 1)

	byType := g.From(source, Filter{Type: ua.IDHasComponent})
	if len(byType) != 2 {
		t.Errorf("type filter matched %d refs, want 2", len(byType))
	}

	forward := g.From(source, Filter{Type: ua.IDHasComponent, Direction: DirectionForward})
	if len(forward) != 1 || forward[0].Target != ua.NewNumericNodeID(1, 2) {
		t.Errorf("forward filter = %v", forward)
	}

	inverse := g.From(source, Filter{Direction: DirectionInverse})
	if len(inverse) != 1 || inverse[0].Target != ua.NewNumericNodeID(1, 4) {
		t.Errorf("inverse filter = %v", inverse)
	}
}

func TestGraph_InsertionOrderPreserved(t *testing.T) {
	g := New()
	targets := []uint32{20, 10, 40, 30}
	for _, tgt := range targets {
		g.Add(ref(1, tgt, ua.IDHasComponent, true))
	}

	refs := g.From(ua.NewNumericNodeID(1, 1), Filter{})
	for i, r := range refs {
		if r.Target.Numeric != targets[i] {
			t.Fatalf("ref[%d].Target = %d, want %d (insertion order)", i, r.Target.Numeric, targets[i])
		}
	}
}

func TestGraph_Remove(t *testing.T) {
	g := New()
	g.Add(ref(1, 2, ua.IDHasComponent, true))
	g.Add(ref(1, 3, ua.IDHasComponent, true))

	removed := g.Remove(ua.NewNumericNodeID(1, 1), ua.NewNumericNodeID(1, 2), ua.IDHasComponent)
	if removed != 1 {
		t.Fatalf("Remove removed %d, want 1", removed)
	}
	if g.Count() != 1 {
		t.Errorf("Count = %d, want 1", g.Count())
	}
	if refs := g.To(ua.NewNumericNodeID(1, 2), Filter{}); len(refs) != 0 {
		t.Errorf("target index still has %d refs after Remove", len(refs))
	}
}

func TestGraph_RemoveIncident(t *testing.T) {
	g := New()
	g.Add(ref(1, 2, ua.IDHasComponent, true))
	g.Add(ref(3, 1, ua.IDOrganizes, true))
	g.Add(ref(3, 2, ua.IDOrganizes, true))

	removed := g.RemoveIncident(ua.NewNumericNodeID(1, 1))
	if removed != 2 {
		t.Fatalf("RemoveIncident removed %d, want 2", removed)
	}
	if g.Count() != 1 {
		t.Errorf("Count = %d, want 1", g.Count())
	}
	if refs := g.From(ua.NewNumericNodeID(1, 3), Filter{}); len(refs) != 1 {
		t.Errorf("unrelated source lost references: %v", refs)
	}
}

func TestGraph_RemoveIncidentSelfLoop(t *testing.T) {
	g := New()
	self := ref(1, 1, ua.IDHasComponent, true)
	g.Add(self)

	if removed := g.RemoveIncident(ua.NewNumericNodeID(1, 1)); removed != 1 {
		t.Errorf("RemoveIncident removed %d, want 1", removed)
	}
	if g.Count() != 0 {
		t.Errorf("Count = %d, want 0", g.Count())
	}
}

func TestGraph_Each(t *testing.T) {
	g := New()
	g.Add(ref(1, 2, ua.IDHasComponent, true))
	g.Add(ref(2, 3, ua.IDHasComponent, true))

	seen := 0
	g.Each(func(Reference) bool {
		seen++
		return true
	})
	if seen != 2 {
		t.Errorf("Each visited %d edges, want 2", seen)
	}

	seen = 0
	g.Each(func(Reference) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Errorf("Each with early stop visited %d edges, want 1", seen)
	}
}
