package maxflow

import (
	"context"

	"github.com/cutgraph/mtcut/mtgraph"
)

// Oracle computes the value of a minimum s-t cut in g, and the vertex set
// on the source side of some minimum cut. Implementations must not mutate
// g and must respect ctx cancellation for large graphs.
type Oracle interface {
	MinCut(ctx context.Context, g *mtgraph.Graph, s, t mtgraph.NodeID) (value int64, sourceSide []bool, err error)
	IsolatingCut(ctx context.Context, g *mtgraph.Graph, terminal mtgraph.NodeID, others []mtgraph.NodeID) (value int64, err error)
}

// PushRelabel is an Oracle backed by the push-relabel max-flow algorithm.
// Seed controls the order discharge visits each node's admissible arcs
// (network.finalizeScanOrder); the same Seed value always produces the
// same traversal order and hence the same result, satisfying §6's
// "running the driver twice with the same seed yields the same value"
// requirement. The zero value runs with seed 0, not an unseeded/identity
// order — still fully deterministic, just an arbitrary fixed permutation.
type PushRelabel struct {
	Seed int64
}

// buildNetwork mirrors g's undirected edges 1:1 into a throwaway flow
// network of g.N() nodes plus extraNodes additional nodes (numbered g.N(),
// g.N()+1, ... for callers that need synthetic vertices, e.g. a super-sink).
func buildNetwork(g *mtgraph.Graph, extraNodes int) *network {
	n := g.N()
	net := newNetwork(n + extraNodes)
	for u := 0; u < n; u++ {
		for e := 0; e < g.Degree(mtgraph.NodeID(u)); e++ {
			v := int(g.EdgeTarget(mtgraph.NodeID(u), e))
			if v <= u {
				continue // each undirected edge wired once, from its lower-numbered endpoint
			}
			net.addUndirectedArc(u, v, g.EdgeWeight(mtgraph.NodeID(u), e))
		}
	}
	return net
}

// MinCut builds a throwaway flow network mirroring g's undirected edges,
// runs push-relabel from s to t, and recovers the source side of a minimum
// cut as the set of vertices reachable from s in the residual graph.
func (pr PushRelabel) MinCut(ctx context.Context, g *mtgraph.Graph, s, t mtgraph.NodeID) (int64, []bool, error) {
	net := buildNetwork(g, 0)
	net.finalizeScanOrder(pr.Seed)

	value, err := findMaxFlow(ctx, net, int(s), int(t))
	if err != nil {
		return 0, nil, err
	}

	sourceSide := residualReachable(net, int(s))
	return value, sourceSide, nil
}

// IsolatingCut computes the minimum cut separating terminal from the union
// of others (others must be disjoint from terminal), via the standard
// super-sink construction: a synthetic node joined to every vertex in
// others by an effectively-infinite-capacity arc, so a finite min cut must
// sever terminal from the whole group rather than from whichever member is
// individually cheapest.
func (pr PushRelabel) IsolatingCut(ctx context.Context, g *mtgraph.Graph, terminal mtgraph.NodeID, others []mtgraph.NodeID) (int64, error) {
	net := buildNetwork(g, 1)
	superSink := g.N()
	for _, o := range others {
		net.addDirectedArc(int(o), superSink, infiniteCapacity)
	}
	net.finalizeScanOrder(pr.Seed)

	value, err := findMaxFlow(ctx, net, int(terminal), superSink)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// residualReachable returns, for every vertex, whether it is reachable
// from s following arcs with positive residual capacity (capacity-flow>0):
// exactly the source side of a minimum cut, by max-flow min-cut duality.
func residualReachable(net *network, s int) []bool {
	reached := make([]bool, len(net.nodes))
	reached[s] = true
	stack := []int{s}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := range net.nodes[u].arcs {
			a := &net.nodes[u].arcs[i]
			if a.capacity-a.flow <= 0 {
				continue
			}
			v := a.target.id
			if !reached[v] {
				reached[v] = true
				stack = append(stack, v)
			}
		}
	}
	return reached
}
