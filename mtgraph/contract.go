package mtgraph

// removeHalfEdgeAt drops the e-th half-edge of vertex u via swap-pop,
// fixing the reciprocal's rev pointer if an edge was moved into slot e.
func (g *Graph) removeHalfEdgeAt(u NodeID, e int) {
	edges := g.nodes[u].edges
	last := len(edges) - 1
	if e != last {
		edges[e] = edges[last]
		moved := edges[e]
		g.nodes[moved.target].edges[moved.rev].rev = int32(e)
	}
	g.nodes[u].edges = edges[:last]
}

// removeSlot deletes slot v from the dense vertex array via swap-pop with
// the last slot, re-pointing every half-edge that targeted the moved
// vertex and updating location for its contained birth-ids.
func (g *Graph) removeSlot(v NodeID) {
	last := NodeID(len(g.nodes) - 1)
	if v != last {
		moved := g.nodes[last]
		g.nodes[v] = moved
		for _, he := range moved.edges {
			g.nodes[he.target].edges[he.rev].target = v
		}
		for _, b := range moved.contained {
			g.location[b] = v
		}
	}
	g.nodes = g.nodes[:last]
}

// ContractEdge collapses v into u: parallel edges that result are merged
// by summing weight, the u-v edge itself is dropped, reverse pointers are
// re-pointed for every edge formerly incident to v, contained-vertex sets
// are unioned, and n is decremented. Fails if u and v are not adjacent.
// Runs in time linear in deg(u)+deg(v).
func (g *Graph) ContractEdge(u, v NodeID) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.hasEdge(u, v); !ok {
		return ErrNoSuchEdge
	}
	return g.mergeVertices(u, v)
}

// MergeVertices identifies u and v as a single vertex, exactly like
// ContractEdge, except it also accepts u and v that are not adjacent (the
// common edge-drop step is simply skipped). Used to merge two terminals
// into one super-terminal during branching, where nothing guarantees they
// are directly connected.
func (g *Graph) MergeVertices(u, v NodeID) error {
	if u == v {
		return ErrSelfLoop
	}
	return g.mergeVertices(u, v)
}

func (g *Graph) mergeVertices(u, v NodeID) error {
	un, vn := g.nodes[u], g.nodes[v]

	nbrIdx := make(map[NodeID]int, len(un.edges))
	for i, he := range un.edges {
		nbrIdx[he.target] = i
	}

	if uvIdx, ok := nbrIdx[v]; ok {
		uvWeight := un.edges[uvIdx].weight
		lastIdx := len(un.edges) - 1
		if uvIdx != lastIdx {
			moved := un.edges[lastIdx]
			un.edges[uvIdx] = moved
			g.nodes[moved.target].edges[moved.rev].rev = int32(uvIdx)
			nbrIdx[moved.target] = uvIdx
		}
		un.edges = un.edges[:lastIdx]
		delete(nbrIdx, v)
		un.wDegree -= uvWeight
		g.m -= 2
	}

	// vn.edges is iterated read-only here; only u's and w's adjacency lists mutate.
	for _, he := range vn.edges {
		w := he.target
		if w == u {
			continue // the reciprocal of the u-v edge, already accounted for above
		}
		wt := he.weight
		if idx, exists := nbrIdx[w]; exists {
			// Parallel edge: merge weight onto the existing u-w edge and
			// drop w's now-redundant edge to v.
			un.edges[idx].weight += wt
			rev := un.edges[idx].rev
			g.nodes[w].edges[rev].weight += wt
			un.wDegree += wt
			g.removeHalfEdgeAt(w, int(he.rev))
			g.m -= 2
		} else {
			// No existing u-w edge: rewire w's half-edge so it targets u instead of v.
			newIdx := len(un.edges)
			un.edges = append(un.edges, halfEdge{target: w, weight: wt, rev: he.rev})
			g.nodes[w].edges[he.rev].target = u
			g.nodes[w].edges[he.rev].rev = int32(newIdx)
			nbrIdx[w] = newIdx
			un.wDegree += wt
		}
	}

	un.contained = append(un.contained, vn.contained...)
	for _, b := range vn.contained {
		g.location[b] = u
	}

	g.removeSlot(v)
	return nil
}

// RemoveEdge deletes the edge between u and v entirely (not a contraction:
// both vertices survive) and returns its weight. Used when the engine
// commits a minimum cut's edges as permanently severed.
func (g *Graph) RemoveEdge(u, v NodeID) (int64, error) {
	idx, ok := g.hasEdge(u, v)
	if !ok {
		return 0, ErrNoSuchEdge
	}
	w := g.nodes[u].edges[idx].weight
	revIdx := int(g.nodes[u].edges[idx].rev)
	g.nodes[u].wDegree -= w
	g.removeHalfEdgeAt(u, idx)
	g.nodes[v].wDegree -= w
	g.removeHalfEdgeAt(v, revIdx)
	g.m -= 2
	return w, nil
}

// ContractVertexSet contracts a set of vertices, named by birth-id, into a
// single vertex. birthIDs must be ordered so that each subsequent vertex is
// reachable by an edge from the ones already absorbed (e.g. BFS discovery
// order) — contraction proceeds along that edge, so no edge lookup beyond
// an adjacent pair is ever required. Each step is one ContractEdge, whose
// cost is linear in the current degree of the growing block plus that of
// the absorbed vertex; the whole call is therefore not linear in the total
// incident degree of the set, since the block's adjacency is rescanned at
// every step.
func (g *Graph) ContractVertexSet(birthIDs []uint32) error {
	if len(birthIDs) < 2 {
		return nil
	}
	anchorBirth := birthIDs[0]
	for _, id := range birthIDs[1:] {
		anchor := g.CurrentPosition(anchorBirth)
		v := g.CurrentPosition(id)
		if v == anchor {
			continue // already absorbed, e.g. via an earlier parallel-edge merge
		}
		if err := g.ContractEdge(anchor, v); err != nil {
			return err
		}
	}
	return nil
}
