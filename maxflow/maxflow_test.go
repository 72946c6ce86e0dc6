package maxflow

import (
	"context"
	"testing"

	"github.com/cutgraph/mtcut/mtgraph"
)

func mustEdge(t *testing.T, g *mtgraph.Graph, u, v mtgraph.NodeID, w int64) {
	t.Helper()
	if err := g.NewEdge(u, v, w); err != nil {
		t.Fatal(err)
	}
}

func TestMinCutSingleEdge(t *testing.T) {
	g := mtgraph.New(2)
	mustEdge(t, g, 0, 1, 7)

	value, side, err := PushRelabel{}.MinCut(context.Background(), g, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if value != 7 {
		t.Fatalf("expected cut value 7, got %d", value)
	}
	if !side[0] || side[1] {
		t.Fatalf("expected source-side {0}, got %v", side)
	}
}

func TestMinCutDiamond(t *testing.T) {
	// 0 -3-> 1 -2-> 3, 0 -2-> 2 -3-> 3: two parallel paths, bottlenecks 2 each side.
	g := mtgraph.New(4)
	mustEdge(t, g, 0, 1, 3)
	mustEdge(t, g, 1, 3, 2)
	mustEdge(t, g, 0, 2, 2)
	mustEdge(t, g, 2, 3, 3)

	value, _, err := PushRelabel{}.MinCut(context.Background(), g, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if value != 4 {
		t.Fatalf("expected max flow 4 (2+2 bottlenecks), got %d", value)
	}
}

func TestMinCutK4(t *testing.T) {
	g := mtgraph.New(4)
	for u := mtgraph.NodeID(0); u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			mustEdge(t, g, u, v, 1)
		}
	}
	value, _, err := PushRelabel{}.MinCut(context.Background(), g, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if value != 3 {
		t.Fatalf("expected min cut 3 (isolate one vertex of K4), got %d", value)
	}
}

func TestMinCutDisconnected(t *testing.T) {
	g := mtgraph.New(4)
	mustEdge(t, g, 0, 1, 5)
	mustEdge(t, g, 2, 3, 5)
	value, side, err := PushRelabel{}.MinCut(context.Background(), g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if value != 0 {
		t.Fatalf("expected 0 flow between disconnected terminals, got %d", value)
	}
	if !side[0] || !side[1] || side[2] || side[3] {
		t.Fatalf("expected source side to be exactly {0,1}, got %v", side)
	}
}

func TestIsolatingCutStarGraph(t *testing.T) {
	// Terminal 0 at the center of a star, leaves 1,2,3 are the "others".
	g := mtgraph.New(4)
	mustEdge(t, g, 0, 1, 3)
	mustEdge(t, g, 0, 2, 4)
	mustEdge(t, g, 0, 3, 5)

	value, err := PushRelabel{}.IsolatingCut(context.Background(), g, 0, []mtgraph.NodeID{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if value != 12 {
		t.Fatalf("expected isolating cut to sever all three spokes (3+4+5=12), got %d", value)
	}
}

func TestIsolatingCutEqualsSinglePairOnCycle(t *testing.T) {
	// A 4-cycle 0-1-2-3-0 all weight 1: isolating {0} from {1,3} (2 is not a
	// terminal here) costs 2 (both spokes of 0), same as either single min-cut.
	g := mtgraph.New(4)
	mustEdge(t, g, 0, 1, 1)
	mustEdge(t, g, 1, 2, 1)
	mustEdge(t, g, 2, 3, 1)
	mustEdge(t, g, 3, 0, 1)

	value, err := PushRelabel{}.IsolatingCut(context.Background(), g, 0, []mtgraph.NodeID{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if value != 2 {
		t.Fatalf("expected isolating cut value 2, got %d", value)
	}
}

func TestMinCutSameSeedSameValue(t *testing.T) {
	// Different seeds permute discharge's arc-scan order, but the flow
	// value (and hence the cut value) is invariant to that order; the same
	// seed must also reproduce the same value across repeated runs.
	g := mtgraph.New(5)
	mustEdge(t, g, 0, 1, 3)
	mustEdge(t, g, 0, 2, 2)
	mustEdge(t, g, 1, 3, 2)
	mustEdge(t, g, 2, 3, 3)
	mustEdge(t, g, 2, 4, 1)
	mustEdge(t, g, 3, 4, 4)

	for _, seed := range []int64{0, 1, 42, -7} {
		value, _, err := PushRelabel{Seed: seed}.MinCut(context.Background(), g, 0, 4)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		again, _, err := PushRelabel{Seed: seed}.MinCut(context.Background(), g, 0, 4)
		if err != nil {
			t.Fatalf("seed %d (repeat): %v", seed, err)
		}
		if value != again {
			t.Fatalf("seed %d: got %d then %d on repeat, want identical", seed, value, again)
		}
		if value != 4 {
			t.Fatalf("seed %d: want cut value 4, got %d", seed, value)
		}
	}
}

func TestMinCutRespectsCancellation(t *testing.T) {
	g := mtgraph.New(2)
	mustEdge(t, g, 0, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := PushRelabel{}.MinCut(ctx, g, 0, 1)
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}
