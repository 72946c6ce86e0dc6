// Package testutil provides a brute-force multiway-cut cross-check for
// small graphs, used by package tests to verify the driver's result
// against exhaustive search (§8: "verifiable by brute force for |V| <=
// 16"). It is built on gonum's graph types rather than the solver's own
// mtgraph, so the check is independent of any bug shared between the
// production code and its verifier.
package testutil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Edge is one undirected weighted edge of a brute-force input graph.
type Edge struct {
	U, V   int
	Weight int64
}

// BruteForceMultiwayCut returns the minimum total weight of edges whose
// removal places each terminal in its own connected component, by
// exhaustively trying every assignment of the non-terminal vertices to one
// of len(terminals) blocks. Exponential in n - len(terminals); callers
// must keep n small (<=16, per the testable property this exists to
// check).
func BruteForceMultiwayCut(n int, edges []Edge, terminals []int) (int64, error) {
	k := len(terminals)
	if k < 2 {
		return 0, fmt.Errorf("testutil: need at least 2 terminals, got %d", k)
	}
	terminalBlock := make(map[int]int, k)
	for i, t := range terminals {
		if _, dup := terminalBlock[t]; dup {
			return 0, fmt.Errorf("testutil: duplicate terminal %d", t)
		}
		terminalBlock[t] = i
	}

	free := make([]int, 0, n-k)
	for v := 0; v < n; v++ {
		if _, isTerminal := terminalBlock[v]; !isTerminal {
			free = append(free, v)
		}
	}

	assignment := make([]int, n)
	for v, b := range terminalBlock {
		assignment[v] = b
	}

	best := int64(math.MaxInt64)
	total := pow(k, len(free))
	for code := 0; code < total; code++ {
		c := code
		for _, v := range free {
			assignment[v] = c % k
			c /= k
		}
		if w := cutWeight(edges, assignment); w < best {
			best = w
		}
	}
	return best, nil
}

func cutWeight(edges []Edge, assignment []int) int64 {
	var w int64
	for _, e := range edges {
		if assignment[e.U] != assignment[e.V] {
			w += e.Weight
		}
	}
	return w
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// BuildGonumGraph renders edges into a gonum simple.WeightedUndirectedGraph,
// useful for callers that want to additionally sanity-check connectivity
// (e.g. via topo.ConnectedComponents) around a candidate partition.
func BuildGonumGraph(n int, edges []Edge) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for v := 0; v < n; v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range edges {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: float64(e.Weight)})
	}
	return g
}

// BlocksAreConnected reports whether every terminal's block, induced by
// assignment, forms a single connected component in g - i.e. that the
// proposed partition is actually a legal multiway cut and not just an
// edge-minimal vertex labelling with a disconnected block.
func BlocksAreConnected(g *simple.WeightedUndirectedGraph, assignment []int32, numBlocks int) bool {
	for block := 0; block < numBlocks; block++ {
		sub := simple.NewWeightedUndirectedGraph(0, 0)
		var nodes []graph.Node
		for v, b := range assignment {
			if int(b) == block {
				n := simple.Node(v)
				sub.AddNode(n)
				nodes = append(nodes, n)
			}
		}
		if len(nodes) == 0 {
			continue
		}
		edges := g.WeightedEdges()
		for edges.Next() {
			e := edges.WeightedEdge()
			fb, fOK := blockOf(assignment, e.From().ID())
			tb, tOK := blockOf(assignment, e.To().ID())
			if fOK && tOK && int(fb) == block && int(tb) == block {
				sub.SetWeightedEdge(e)
			}
		}
		if len(topo.ConnectedComponents(sub)) != 1 {
			return false
		}
	}
	return true
}

func blockOf(assignment []int32, id int64) (int32, bool) {
	if id < 0 || int(id) >= len(assignment) {
		return 0, false
	}
	return assignment[id], true
}
