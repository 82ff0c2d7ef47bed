package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Andy3189/async-opcua/pkg/ua"
)

// TestGraphProperties verifies edge-set invariants with generated
// inputs. These must hold for any sequence of graph operations.
func TestGraphProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genRef := gopter.CombineGens(
		gen.UInt32Range(1, 20),
		gen.UInt32Range(1, 20),
		gen.UInt32Range(31, 48),
		gen.Bool(),
	).Map(func(vs []interface{}) Reference {
		return Reference{
			Source:    ua.NewNumericNodeID(1, vs[0].(uint32)),
			Target:    ua.NewNumericNodeID(1, vs[1].(uint32)),
			Type:      ua.NewNumericNodeID(0, vs[2].(uint32)),
			IsForward: vs[3].(bool),
		}
	})

	// Property 1: adding the same reference twice never changes the count.
	properties.Property("duplicate add is idempotent", prop.ForAll(
		func(refs []Reference) bool {
			g := New()
			for _, r := range refs {
				g.Add(r)
			}
			before := g.Count()
			for _, r := range refs {
				if g.Add(r) {
					return false
				}
			}
			return g.Count() == before
		},
		gen.SliceOf(genRef),
	))

	// Property 2: every added edge is visible from both endpoints.
	properties.Property("dual indices agree", prop.ForAll(
		func(refs []Reference) bool {
			g := New()
			for _, r := range refs {
				g.Add(r)
			}
			ok := true
			g.Each(func(r Reference) bool {
				foundFrom := false
				for _, fr := range g.From(r.Source, Filter{}) {
					if fr == r {
						foundFrom = true
						break
					}
				}
				foundTo := false
				for _, tr := range g.To(r.Target, Filter{}) {
					if tr == r {
						foundTo = true
						break
					}
				}
				ok = foundFrom && foundTo
				return ok
			})
			return ok
		},
		gen.SliceOf(genRef),
	))

	// Property 3: add then remove restores the prior count.
	properties.Property("remove undoes add", prop.ForAll(
		func(r Reference) bool {
			g := New()
			g.Add(r)
			g.Remove(r.Source, r.Target, r.Type)
			return g.Count() == 0 &&
				len(g.From(r.Source, Filter{})) == 0 &&
				len(g.To(r.Target, Filter{})) == 0
		},
		genRef,
	))

	properties.TestingRun(t)
}
