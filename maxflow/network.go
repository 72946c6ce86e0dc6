// Package maxflow implements the §6 flow oracle: given a graph and two
// terminals, compute the minimum s-t cut value and the vertex set on the
// source side of some minimum cut, without mutating the graph. The
// algorithm is a push-relabel max-flow with node "discharge" operations and
// height-based active-node prioritization, adapted from a reference
// push-relabel implementation built for incrementally-updated flow
// networks (arcs there additionally carried priorities for warm starts;
// this oracle always runs cold; see DESIGN.md).
package maxflow

import (
	"math"
	"math/rand"
)

// arc is one directed unit of flow capacity. Arcs are created in undirected
// pairs: for an edge (u, v, w), both the u->v and v->u arcs get capacity w,
// each the other's reciprocal. This differs from a typical directed-graph
// residual pair (capacity 0 on the reverse arc) because the underlying
// edge genuinely has w capacity in either direction — exactly the
// conversion used to compute undirected min cuts via directed max flow.
type arc struct {
	capacity   int64
	flow       int64
	reciprocal uint32
	target     *node
}

// node is a vertex of the flow network built for one oracle call.
type node struct {
	id     int
	height uint32
	arcs   []arc
	excess int64
	next   int
	scan   []int // permutation of arc indices discharge visits, in order
}

// network is a throwaway flow graph built fresh from an mtgraph.Graph for
// a single min-cut query; it never mutates the graph it was built from.
type network struct {
	nodes []node
}

func newNetwork(n int) *network {
	net := &network{nodes: make([]node, n)}
	for i := range net.nodes {
		net.nodes[i].id = i
	}
	return net
}

// addUndirectedArc wires a (u, v, w) edge as a reciprocal pair of arcs,
// each carrying the full capacity w.
func (net *network) addUndirectedArc(u, v int, w int64) {
	ui, vi := len(net.nodes[u].arcs), len(net.nodes[v].arcs)
	net.nodes[u].arcs = append(net.nodes[u].arcs, arc{capacity: w, reciprocal: uint32(vi), target: &net.nodes[v]})
	net.nodes[v].arcs = append(net.nodes[v].arcs, arc{capacity: w, reciprocal: uint32(ui), target: &net.nodes[u]})
}

// addDirectedArc wires a one-way arc u->v with the given capacity and a
// zero-capacity reverse stub. Used for synthetic arcs, such as a
// super-sink's incident edges, that have no undirected counterpart in the
// source graph.
func (net *network) addDirectedArc(u, v int, capacity int64) {
	ui, vi := len(net.nodes[u].arcs), len(net.nodes[v].arcs)
	net.nodes[u].arcs = append(net.nodes[u].arcs, arc{capacity: capacity, reciprocal: uint32(vi), target: &net.nodes[v]})
	net.nodes[v].arcs = append(net.nodes[v].arcs, arc{capacity: 0, reciprocal: uint32(ui), target: &net.nodes[u]})
}

// finalizeScanOrder assigns every node's arc-visit order as a seeded
// permutation of its arc indices, mirroring the teacher's Shuffle idiom
// (utils.Shuffle's Fisher-Yates) but using a per-call rand.Rand instead of
// the shared global source, so two oracle calls with the same seed
// traverse admissible arcs in the same order (§6's "seed for any
// randomized tie-breaks" requirement) regardless of what else is running
// concurrently. Must be called once, after every arc (including any
// synthetic super-sink arcs) has been added.
func (net *network) finalizeScanOrder(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range net.nodes {
		n := &net.nodes[i]
		n.scan = make([]int, len(n.arcs))
		for k := range n.scan {
			n.scan[k] = k
		}
		rng.Shuffle(len(n.scan), func(a, b int) { n.scan[a], n.scan[b] = n.scan[b], n.scan[a] })
	}
}

const infiniteHeight = uint32(math.MaxUint32)

// infiniteCapacity stands in for "uncuttable" on synthetic super-sink arcs:
// comfortably larger than any realistic sum of real edge weights, but far
// enough below maxExcess that summing it across many terminals cannot
// overflow int64.
const infiniteCapacity = int64(1) << 40
