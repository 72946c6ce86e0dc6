package mtgraph

// New returns a Graph with n isolated vertices and birth-ids 0..n-1.
func New(n int) *Graph {
	g := &Graph{
		nodes:    make([]*node, n),
		location: make([]uint32, n),
	}
	for i := range g.nodes {
		g.nodes[i] = &node{contained: []uint32{uint32(i)}}
		g.location[i] = uint32(i)
	}
	return g
}

// N returns the current number of live vertices.
func (g *Graph) N() int { return len(g.nodes) }

// M returns the number of directed half-edges (twice the undirected edge count).
func (g *Graph) M() int { return g.m }

// CurrentPosition returns the slot currently holding the vertex that was
// born with the given birth-id (0-indexed, dense at construction time).
func (g *Graph) CurrentPosition(birthID uint32) NodeID { return g.location[birthID] }

// ContainedVertices returns the birth-ids absorbed into slot u, including u's own.
func (g *Graph) ContainedVertices(u NodeID) []uint32 { return g.nodes[u].contained }

// Degree returns the number of incident half-edges at u.
func (g *Graph) Degree(u NodeID) int { return len(g.nodes[u].edges) }

// WeightedDegree returns the sum of incident edge weights at u.
func (g *Graph) WeightedDegree(u NodeID) int64 { return g.nodes[u].wDegree }

// EdgeTarget returns the vertex at the far end of the e-th half-edge of u.
func (g *Graph) EdgeTarget(u NodeID, e int) NodeID { return g.nodes[u].edges[e].target }

// EdgeWeight returns the weight of the e-th half-edge of u.
func (g *Graph) EdgeWeight(u NodeID, e int) int64 { return g.nodes[u].edges[e].weight }

// SetEdgeWeight sets the weight of the e-th half-edge of u and mirrors the
// change onto its reciprocal, keeping the weight-symmetric invariant.
func (g *Graph) SetEdgeWeight(u NodeID, e int, w int64) {
	he := &g.nodes[u].edges[e]
	delta := w - he.weight
	he.weight = w
	g.nodes[u].wDegree += delta
	target, revIdx := he.target, he.rev
	g.nodes[target].edges[revIdx].weight = w
	g.nodes[target].wDegree += delta
}

// ReverseEdge returns the index, within the adjacency slice of the
// neighbour at the far end of edge e of u, of the reciprocal half-edge.
func (g *Graph) ReverseEdge(u NodeID, e int) int { return int(g.nodes[u].edges[e].rev) }

// Partition returns the partition index tag of u (default 0).
func (g *Graph) Partition(u NodeID) int32 { return g.nodes[u].partition }

// SetPartition sets the partition index tag of u.
func (g *Graph) SetPartition(u NodeID, p int32) { g.nodes[u].partition = p }

// TotalEdgeWeight returns the sum of all edge weights currently in the graph.
func (g *Graph) TotalEdgeWeight() int64 {
	var sum int64
	for _, n := range g.nodes {
		sum += n.wDegree
	}
	return sum / 2
}

func (g *Graph) hasEdge(u, v NodeID) (int, bool) {
	for i, he := range g.nodes[u].edges {
		if he.target == v {
			return i, true
		}
	}
	return -1, false
}

// HasEdge reports whether an edge exists between u and v, and its index at u.
func (g *Graph) HasEdge(u, v NodeID) (int, bool) { return g.hasEdge(u, v) }

// NewEdge adds an undirected edge between u and v with weight w. It fails
// if u == v or the edge already exists (§4.A contract).
func (g *Graph) NewEdge(u, v NodeID, w int64) error {
	if u == v {
		return ErrSelfLoop
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	if int(u) >= len(g.nodes) || int(v) >= len(g.nodes) {
		return ErrOutOfRange
	}
	if _, ok := g.hasEdge(u, v); ok {
		return ErrDuplicateEdge
	}
	ui := len(g.nodes[u].edges)
	vi := len(g.nodes[v].edges)
	g.nodes[u].edges = append(g.nodes[u].edges, halfEdge{target: v, weight: w, rev: int32(vi)})
	g.nodes[v].edges = append(g.nodes[v].edges, halfEdge{target: u, weight: w, rev: int32(ui)})
	g.nodes[u].wDegree += w
	g.nodes[v].wDegree += w
	g.m += 2
	return nil
}

// Clone returns a deep, independent copy of the graph. Used when a branch
// needs to diverge structurally from its sibling without mutating shared state.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		nodes:    make([]*node, len(g.nodes)),
		location: append([]uint32(nil), g.location...),
		m:        g.m,
	}
	for i, n := range g.nodes {
		cp := &node{
			edges:     append([]halfEdge(nil), n.edges...),
			wDegree:   n.wDegree,
			partition: n.partition,
			contained: append([]uint32(nil), n.contained...),
		}
		out.nodes[i] = cp
	}
	return out
}
