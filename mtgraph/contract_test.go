package mtgraph

import "testing"

func TestContractEdgeMergesParallelEdges(t *testing.T) {
	// Triangle 0-1-2, all unit weight. Contracting 0-1 should leave a
	// single vertex (at slot 0, since 1 was absorbed) with one edge to 2
	// of weight 2 (the two parallel 0-2 and 1-2 edges merged).
	g := New(3)
	must(t, g.NewEdge(0, 1, 1))
	must(t, g.NewEdge(0, 2, 1))
	must(t, g.NewEdge(1, 2, 1))

	must(t, g.ContractEdge(0, 1))

	if g.N() != 2 {
		t.Fatalf("want 2 vertices after contraction, got %d", g.N())
	}
	survivor := g.CurrentPosition(0)
	other := g.CurrentPosition(2)
	idx, ok := g.HasEdge(survivor, other)
	if !ok {
		t.Fatal("expected surviving vertex to retain an edge to vertex 2")
	}
	if w := g.EdgeWeight(survivor, idx); w != 2 {
		t.Fatalf("want merged weight 2, got %d", w)
	}
	if err := Validate(g); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestContractEdgeRequiresAdjacency(t *testing.T) {
	g := New(3)
	must(t, g.NewEdge(0, 1, 1))
	if err := g.ContractEdge(0, 2); err != ErrNoSuchEdge {
		t.Fatalf("want ErrNoSuchEdge, got %v", err)
	}
}

func TestContractEdgeRejectsSelfLoop(t *testing.T) {
	g := New(2)
	if err := g.ContractEdge(0, 0); err != ErrSelfLoop {
		t.Fatalf("want ErrSelfLoop, got %v", err)
	}
}

func TestMergeVerticesAllowsNonAdjacent(t *testing.T) {
	g := New(3)
	must(t, g.NewEdge(0, 1, 2))
	must(t, g.NewEdge(1, 2, 3))

	must(t, g.MergeVertices(0, 2))

	if g.N() != 2 {
		t.Fatalf("want 2 vertices after merge, got %d", g.N())
	}
	survivor := g.CurrentPosition(0)
	mid := g.CurrentPosition(1)
	idx, ok := g.HasEdge(survivor, mid)
	if !ok {
		t.Fatal("expected an edge between the merged vertex and vertex 1")
	}
	if w := g.EdgeWeight(survivor, idx); w != 5 {
		t.Fatalf("want combined weight 5, got %d", w)
	}
	if err := Validate(g); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestContainedVerticesAfterMerge(t *testing.T) {
	g := New(3)
	must(t, g.NewEdge(0, 1, 1))
	must(t, g.NewEdge(1, 2, 1))
	must(t, g.ContractEdge(0, 1))

	contained := g.ContainedVertices(g.CurrentPosition(0))
	found := map[uint32]bool{}
	for _, b := range contained {
		found[b] = true
	}
	if !found[0] || !found[1] {
		t.Fatalf("want birth-ids 0 and 1 contained, got %v", contained)
	}
}

func TestRemoveEdgeKeepsBothVertices(t *testing.T) {
	g := New(2)
	must(t, g.NewEdge(0, 1, 4))
	w, err := g.RemoveEdge(0, 1)
	must(t, err)
	if w != 4 {
		t.Fatalf("want removed weight 4, got %d", w)
	}
	if g.N() != 2 {
		t.Fatalf("RemoveEdge must not remove any vertex, got N=%d", g.N())
	}
	if _, ok := g.HasEdge(0, 1); ok {
		t.Fatal("expected no edge between 0 and 1 after removal")
	}
	if g.WeightedDegree(0) != 0 || g.WeightedDegree(1) != 0 {
		t.Fatalf("want both weighted degrees 0, got %d %d", g.WeightedDegree(0), g.WeightedDegree(1))
	}
}

func TestRemoveEdgeNoSuchEdge(t *testing.T) {
	g := New(2)
	if _, err := g.RemoveEdge(0, 1); err != ErrNoSuchEdge {
		t.Fatalf("want ErrNoSuchEdge, got %v", err)
	}
}

func TestContractVertexSetChain(t *testing.T) {
	// Path 0-1-2-3; contracting {0,1,2} (BFS order) in one call should
	// leave 2 vertices: the absorbed block and vertex 3.
	g := New(4)
	must(t, g.NewEdge(0, 1, 1))
	must(t, g.NewEdge(1, 2, 1))
	must(t, g.NewEdge(2, 3, 1))

	must(t, g.ContractVertexSet([]uint32{0, 1, 2}))

	if g.N() != 2 {
		t.Fatalf("want 2 vertices, got %d", g.N())
	}
	survivor := g.CurrentPosition(0)
	other := g.CurrentPosition(3)
	if _, ok := g.HasEdge(survivor, other); !ok {
		t.Fatal("expected an edge to the un-contracted vertex 3")
	}
	if err := Validate(g); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestContractVertexSetNoOpBelowTwo(t *testing.T) {
	g := New(2)
	must(t, g.NewEdge(0, 1, 1))
	must(t, g.ContractVertexSet([]uint32{0}))
	if g.N() != 2 {
		t.Fatalf("want no-op for a single-element set, got N=%d", g.N())
	}
}
