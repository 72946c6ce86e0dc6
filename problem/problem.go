// Package problem defines the subproblem record (§4.C) that flows through
// the scheduler and branch-and-bound engine: an immutable-by-convention
// descriptor of one node in the branch-and-bound tree.
package problem

import (
	"math"

	"github.com/cutgraph/mtcut/mtgraph"
)

// Terminal is one of the vertices the multiway cut must separate. Birth is
// the stable birth-id identifying this terminal within its Subproblem's
// Graph lineage (valid across Clone and contraction alike, since birth-ids
// are assigned once and never reused); Position is a cache of
// Graph.CurrentPosition(Birth) and must be refreshed via
// Subproblem.RefreshPositions after any mutation that could move vertex
// slots, before it is read again.
type Terminal struct {
	Birth      uint32
	Position   mtgraph.NodeID
	OriginalID uint32

	// Tag is this terminal's stable block index for save_cut reporting: its
	// position in the root subproblem's terminal list, for the component it
	// belongs to. It is assigned once, at component-split time, and survives
	// merges (which only ever shrink Terminals, never reassign Tag), so a
	// vertex's partition tag set from it remains meaningful even after the
	// terminal that set it has since been merged into another.
	Tag int32
}

// Mapping translates a birth-id in a parent graph to the dense id it was
// assigned in a freshly extracted subgraph (component split). A
// Subproblem's MappingChain composes these left-to-right.
type Mapping []uint32

// Unbounded is the initial upper bound of a subproblem with no known
// feasible solution yet.
const Unbounded = math.MaxInt64

// Subproblem is one node of the branch-and-bound tree: a graph handle, its
// terminals, bound state, and the lineage needed to translate vertex ids
// back to the original input graph.
type Subproblem struct {
	Graph         *mtgraph.Graph
	Terminals     []Terminal
	MappingChain  []Mapping
	LowerBound    int64
	UpperBound    int64
	DeletedWeight int64
	PathTag       string

	// Origin translates a birth-id of Graph (as it stood at subproblem
	// construction, before any contraction) back to its vertex id in the
	// original input graph the driver was called with. It is fixed at
	// component-split time and never touched again; recovering which
	// original vertices ended up in which block (for save_cut) composes
	// Graph.ContainedVertices with this slice.
	Origin []uint32
}

// New builds a root-level Subproblem: no mapping chain, unbounded upper
// bound, zero lower bound and deleted weight.
func New(g *mtgraph.Graph, terminals []Terminal, pathTag string) *Subproblem {
	return &Subproblem{
		Graph:      g,
		Terminals:  terminals,
		LowerBound: 0,
		UpperBound: Unbounded,
		PathTag:    pathTag,
	}
}

// Mapped composes the mapping chain to translate an id born in the
// earliest graph of this lineage down to the dense id of the current graph.
func (p *Subproblem) Mapped(n uint32) uint32 {
	cur := n
	for _, m := range p.MappingChain {
		cur = m[cur]
	}
	return cur
}

// RefreshPositions recomputes every terminal's cached Position from its
// stable Birth id against the subproblem's current Graph. Callers must
// invoke this after any operation that mutates Graph's vertex slots
// (contraction, merge, or substituting in a Clone) and before next reading
// Terminals[i].Position.
func (p *Subproblem) RefreshPositions() {
	for i := range p.Terminals {
		p.Terminals[i].Position = p.Graph.CurrentPosition(p.Terminals[i].Birth)
	}
}

// Live reports the §3 invariant that keeps a subproblem eligible for
// further exploration: lower_bound <= upper_bound.
func (p *Subproblem) Live() bool { return p.LowerBound <= p.UpperBound }

// Child returns a shallow copy of p suitable as a starting point for a
// branch child: same graph handle (callers that diverge structurally must
// Clone the graph themselves), same bounds, a tag suffix appended.
func (p *Subproblem) Child(tagSuffix string) *Subproblem {
	terms := append([]Terminal(nil), p.Terminals...)
	chain := append([]Mapping(nil), p.MappingChain...)
	return &Subproblem{
		Graph:         p.Graph,
		Terminals:     terms,
		MappingChain:  chain,
		LowerBound:    p.LowerBound,
		UpperBound:    p.UpperBound,
		DeletedWeight: p.DeletedWeight,
		PathTag:       p.PathTag + tagSuffix,
		Origin:        p.Origin,
	}
}
