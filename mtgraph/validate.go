package mtgraph

import "fmt"

// Validate checks the structural invariants of §3/§4.A: no self-loops, no
// duplicate targets, weight-symmetric reciprocal half-edges, reverse(reverse(x))
// is the identity, and vertex-containment consistency. It is the Go
// counterpart of original_source's graph_algorithms::checkGraphValidity,
// translated invariant-for-invariant — where the original calls exit(1),
// this returns a typed *InvariantError so the caller decides whether to abort.
// It is O(N+M). The solver itself never calls it; only the package tests do.
func Validate(g *Graph) error {
	edgeTotal := 0
	for u := NodeID(0); u < NodeID(len(g.nodes)); u++ {
		for _, b := range g.nodes[u].contained {
			if g.location[b] != u {
				return &InvariantError{Msg: f("vertex %d is marked contained in %d but location says %d", b, u, g.location[b])}
			}
		}

		seen := make(map[NodeID]struct{}, len(g.nodes[u].edges))
		var weight int64
		edgeTotal += len(g.nodes[u].edges)
		for e, he := range g.nodes[u].edges {
			weight += he.weight
			if he.target == u {
				return &InvariantError{Msg: f("self-edge at vertex %d", u)}
			}
			if int(he.target) >= len(g.nodes) {
				return &InvariantError{Msg: f("edge %d of vertex %d targets %d, graph only has %d vertices", e, u, he.target, len(g.nodes))}
			}
			if _, dup := seen[he.target]; dup {
				return &InvariantError{Msg: f("duplicate edge from %d to %d", u, he.target)}
			}
			seen[he.target] = struct{}{}

			rev := int(he.rev)
			tgt := he.target
			if rev < 0 || rev >= len(g.nodes[tgt].edges) {
				return &InvariantError{Msg: f("edge %d-%d has out-of-range reverse index %d", u, e, rev)}
			}
			if g.nodes[tgt].edges[rev].target != u {
				return &InvariantError{Msg: f("edge %d-%d is not the correct reverse target at %d-%d", u, e, tgt, rev)}
			}
			if g.nodes[tgt].edges[rev].weight != he.weight {
				return &InvariantError{Msg: f("edge %d-%d weight (%d) does not match reverse %d-%d (%d)", u, e, he.weight, tgt, rev, g.nodes[tgt].edges[rev].weight)}
			}
			if int(g.nodes[tgt].edges[rev].rev) != e {
				return &InvariantError{Msg: f("edge %d-%d is not the reverse edge of %d-%d", u, e, tgt, rev)}
			}
		}
		if weight != g.nodes[u].wDegree {
			return &InvariantError{Msg: f("weighted degree of %d is %d, recomputed %d", u, g.nodes[u].wDegree, weight)}
		}
	}
	if edgeTotal != g.m {
		return &InvariantError{Msg: f("half-edge count mismatch: tracked %d, counted %d", g.m, edgeTotal)}
	}
	return nil
}

func f(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
