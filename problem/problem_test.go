package problem

import (
	"testing"

	"github.com/cutgraph/mtcut/mtgraph"
)

func buildTriangle(t *testing.T) *mtgraph.Graph {
	t.Helper()
	g := mtgraph.New(3)
	for _, e := range [][2]mtgraph.NodeID{{0, 1}, {1, 2}, {0, 2}} {
		if err := g.NewEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("NewEdge: %v", err)
		}
	}
	return g
}

func TestNewSubproblemDefaults(t *testing.T) {
	g := buildTriangle(t)
	terms := []Terminal{{Birth: 0, Position: 0}, {Birth: 1, Position: 1}}
	p := New(g, terms, "root")

	if p.LowerBound != 0 {
		t.Errorf("LowerBound = %d, want 0", p.LowerBound)
	}
	if p.UpperBound != Unbounded {
		t.Errorf("UpperBound = %d, want Unbounded", p.UpperBound)
	}
	if !p.Live() {
		t.Error("a freshly built root subproblem must be Live")
	}
}

func TestLiveReflectsBoundOrdering(t *testing.T) {
	g := buildTriangle(t)
	p := New(g, nil, "")
	p.LowerBound, p.UpperBound = 5, 5
	if !p.Live() {
		t.Error("equal bounds must still count as Live")
	}
	p.LowerBound = 6
	if p.Live() {
		t.Error("lower bound exceeding upper bound must not be Live")
	}
}

func TestChildCopiesStateIndependently(t *testing.T) {
	g := buildTriangle(t)
	terms := []Terminal{{Birth: 0, Position: 0, Tag: 0}, {Birth: 1, Position: 1, Tag: 1}}
	p := New(g, terms, "L")
	p.LowerBound, p.UpperBound, p.DeletedWeight = 1, 9, 2
	p.Origin = []uint32{10, 11, 12}

	child := p.Child("0")

	if child.PathTag != "L0" {
		t.Errorf("PathTag = %q, want %q", child.PathTag, "L0")
	}
	if child.LowerBound != 1 || child.UpperBound != 9 || child.DeletedWeight != 2 {
		t.Errorf("child did not inherit bounds: %+v", child)
	}

	child.Terminals[0].Position = 99
	if p.Terminals[0].Position == 99 {
		t.Error("mutating a child's terminal slice must not affect the parent's")
	}

	if len(child.Origin) != 3 || child.Origin[1] != 11 {
		t.Errorf("child.Origin = %v, want a copy of parent's", child.Origin)
	}
}

func TestMappedComposesChain(t *testing.T) {
	g := mtgraph.New(2)
	p := New(g, nil, "")
	p.MappingChain = []Mapping{{2: 0, 5: 1}, {0: 7, 1: 8}}
	if got := p.Mapped(2); got != 7 {
		t.Errorf("Mapped(2) = %d, want 7", got)
	}
	if got := p.Mapped(5); got != 8 {
		t.Errorf("Mapped(5) = %d, want 8", got)
	}
}

func TestRefreshPositionsTracksContraction(t *testing.T) {
	g := buildTriangle(t)
	terms := []Terminal{{Birth: 0, Position: 0}, {Birth: 2, Position: 2}}
	p := New(g, terms, "")

	// Contracting 0-1 may move vertex 2 into slot 1 via swap-pop if slot 1
	// is removed; either way birth-id 2's slot can change.
	if err := g.ContractEdge(0, 1); err != nil {
		t.Fatalf("ContractEdge: %v", err)
	}
	p.RefreshPositions()

	want := g.CurrentPosition(2)
	if p.Terminals[1].Position != want {
		t.Errorf("Terminals[1].Position = %d, want %d (current slot of birth-id 2)", p.Terminals[1].Position, want)
	}
}
