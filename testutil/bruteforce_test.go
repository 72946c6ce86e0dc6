package testutil

import "testing"

func TestBruteForceK4Clique(t *testing.T) {
	edges := []Edge{
		{0, 1, 1}, {0, 2, 1}, {0, 3, 1},
		{1, 2, 1}, {1, 3, 1}, {2, 3, 1},
	}
	got, err := BruteForceMultiwayCut(4, edges, []int{0, 1})
	if err != nil {
		t.Fatalf("BruteForceMultiwayCut: %v", err)
	}
	if got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
}

func TestBruteForceWeightedPath(t *testing.T) {
	n := 10
	var edges []Edge
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{i, i + 1, 1})
	}
	got, err := BruteForceMultiwayCut(n, edges, []int{0, 9})
	if err != nil {
		t.Fatalf("BruteForceMultiwayCut: %v", err)
	}
	if got != 1 {
		t.Fatalf("want 1, got %d", got)
	}
}

func TestBruteForceThreeTerminalStar(t *testing.T) {
	// Star: centre 0 connects to three arms (1,2,3), weights 2,3,5.
	// Terminals are the three arm tips; the non-terminal centre joins the
	// heaviest arm's block, so only the two lighter spokes are cut: 2+3 = 5.
	edges := []Edge{{0, 1, 2}, {0, 2, 3}, {0, 3, 5}}
	got, err := BruteForceMultiwayCut(4, edges, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("BruteForceMultiwayCut: %v", err)
	}
	if got != 5 {
		t.Fatalf("want 5, got %d", got)
	}
}

func TestBruteForceRejectsDuplicateTerminals(t *testing.T) {
	edges := []Edge{{0, 1, 1}}
	if _, err := BruteForceMultiwayCut(2, edges, []int{0, 0}); err == nil {
		t.Fatal("expected an error for duplicate terminals")
	}
}

func TestBlocksAreConnectedDetectsSplitBlock(t *testing.T) {
	// Two disjoint unit edges (0-1) and (2-3); assignment puts 0 and 2 in
	// the same block despite there being no path between them.
	edges := []Edge{{0, 1, 1}, {2, 3, 1}}
	g := BuildGonumGraph(4, edges)
	assignment := []int32{0, 1, 0, 1}
	if BlocksAreConnected(g, assignment, 2) {
		t.Fatal("expected a disconnected block to be detected")
	}
}

func TestBlocksAreConnectedAcceptsValidPartition(t *testing.T) {
	edges := []Edge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}}
	g := BuildGonumGraph(4, edges)
	assignment := []int32{0, 0, 1, 1}
	if !BlocksAreConnected(g, assignment, 2) {
		t.Fatal("expected a connected partition to be accepted")
	}
}
