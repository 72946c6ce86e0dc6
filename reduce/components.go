// Package reduce implements the §4.B graph reductions applied before (and,
// for isolating blocks, once per) branch-and-bound search: splitting the
// input into its connected components and shrinking the area around each
// terminal into a single vertex.
package reduce

import (
	"fmt"

	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
)

// Split partitions g into its connected components and returns one root
// Subproblem per component that contains two or more terminals. Components
// with zero or one terminal cannot contribute to the cut and are dropped,
// mirroring the source's splitConnectedComponents: a lone terminal in its
// own component needs no separating edges at all.
//
// Each returned Subproblem gets its own freshly extracted, densely
// renumbered mtgraph.Graph and a problem.Mapping translating g's birth-ids
// into that subgraph's birth-ids, so Subproblem.Mapped translates an
// original id to its birth-id in the subgraph (Subproblem.Origin maps the
// other way). Split is meant to be called once,
// by the driver, directly on the graph it loaded: Subproblem.Origin is
// populated on the assumption that g's own birth-ids already are the
// original vertex ids.
func Split(g *mtgraph.Graph, terminals []uint32, pathPrefix string) []*problem.Subproblem {
	n := g.N()
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	numComp := 0
	stack := make([]mtgraph.NodeID, 0, n)
	for s := 0; s < n; s++ {
		if comp[s] != -1 {
			continue
		}
		comp[s] = numComp
		stack = append(stack, mtgraph.NodeID(s))
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for e := 0; e < g.Degree(u); e++ {
				v := g.EdgeTarget(u, e)
				if comp[v] == -1 {
					comp[v] = numComp
					stack = append(stack, v)
				}
			}
		}
		numComp++
	}

	termsByComp := make([][]uint32, numComp)
	for _, t := range terminals {
		c := comp[t]
		termsByComp[c] = append(termsByComp[c], t)
	}

	var out []*problem.Subproblem
	for c := 0; c < numComp; c++ {
		if len(termsByComp[c]) < 2 {
			continue
		}
		members := make([]uint32, 0)
		for v := 0; v < n; v++ {
			if comp[v] == c {
				members = append(members, uint32(v))
			}
		}
		sub, mapping := extract(g, members)

		subTerminals := make([]problem.Terminal, len(termsByComp[c]))
		for i, t := range termsByComp[c] {
			newID := mapping[t]
			subTerminals[i] = problem.Terminal{
				Birth:      newID,
				Position:   sub.CurrentPosition(newID),
				OriginalID: t,
				Tag:        int32(i),
			}
		}

		p := problem.New(sub, subTerminals, fmt.Sprintf("%sc%d", pathPrefix, c))
		p.Origin = members // members[newID] is g's birth-id, i.e. the original vertex id
		// mapping is the one coarsening Split itself performs; further
		// contraction along the branch (merges, isolating blocks) is tracked
		// by Graph's own birth-id/location bookkeeping instead of additional
		// MappingChain entries, so this chain never grows past length 1.
		p.MappingChain = []problem.Mapping{mapping}
		out = append(out, p)
	}
	return out
}

// extract builds a new dense graph containing exactly the given members
// (sorted ascending, as gathered by Split) and returns it alongside a
// Mapping from the original graph's birth-ids to the new graph's birth-ids
// (entries for vertices outside members are left zero and must not be
// read).
func extract(g *mtgraph.Graph, members []uint32) (*mtgraph.Graph, problem.Mapping) {
	mapping := make(problem.Mapping, g.N())
	for newID, oldBirth := range members {
		mapping[oldBirth] = uint32(newID)
	}

	sub := mtgraph.New(len(members))
	for newU, oldBirth := range members {
		u := g.CurrentPosition(oldBirth)
		for e := 0; e < g.Degree(u); e++ {
			v := g.EdgeTarget(u, e)
			vBirth := firstContained(g, v)
			newV := mapping[vBirth]
			if newV <= uint32(newU) {
				continue // each undirected edge added once, from its lower-numbered endpoint
			}
			w := g.EdgeWeight(u, e)
			if err := sub.NewEdge(mtgraph.NodeID(newU), mtgraph.NodeID(newV), w); err != nil {
				panic(err) // structural bug in extraction, not a runtime condition
			}
		}
	}
	return sub, mapping
}

// firstContained returns a birth-id known to currently reside at slot v.
// Any contained member works, since every member that passed through the
// same earlier contraction maps to the same birth-id-keyed position here;
// extract runs before any contraction, so v's contained set is just {v}.
func firstContained(g *mtgraph.Graph, v mtgraph.NodeID) uint32 {
	return g.ContainedVertices(v)[0]
}
