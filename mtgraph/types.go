// Package mtgraph implements the mutable, contractible graph that the
// branch-and-bound multiway-cut solver operates on: a packed adjacency
// representation where every undirected edge is stored as a pair of
// half-edges that each know the index of their reciprocal, so that
// contraction can rewire neighbours in time linear in their degree
// without a second lookup.
package mtgraph

import "errors"

// NodeID identifies a vertex. It is only stable for the lifetime of one
// Graph value and is dense in [0, N()); contraction may renumber vertices.
type NodeID = uint32

// Sentinel errors for graph construction and mutation.
var (
	ErrSelfLoop       = errors.New("mtgraph: self-loop not allowed")
	ErrDuplicateEdge  = errors.New("mtgraph: parallel edge already exists")
	ErrNoSuchEdge     = errors.New("mtgraph: no edge between given vertices")
	ErrNegativeWeight = errors.New("mtgraph: negative edge weight")
	ErrOutOfRange     = errors.New("mtgraph: vertex id out of range")
)

// InvariantError is returned by Validate when a structural invariant of
// the half-edge/reverse-edge representation has been broken. It indicates
// a bug in the mutation code, not a caller error.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "mtgraph: invariant violated: " + e.Msg }

// halfEdge is one direction of an undirected edge. rev is the index, in
// the adjacency slice of the vertex pointed to by target, of the
// reciprocal half-edge. Keeping rev current on every mutation is the
// central invariant of this package.
type halfEdge struct {
	target NodeID
	weight int64
	rev    int32
}

// node is the per-vertex record stored at a dense slot.
type node struct {
	edges     []halfEdge
	wDegree   int64
	partition int32
	// contained holds the birth-ids (original dense identifiers this
	// Graph was constructed with) absorbed into this slot by contraction.
	contained []uint32
}

// Graph is the mutable contractible graph of §4.A: a packed adjacency
// structure supporting O(degree) contraction with reverse-edge upkeep.
type Graph struct {
	nodes []*node
	// location maps a birth-id (the dense id this vertex had when the
	// Graph was constructed) to its current slot. It never grows or
	// shrinks once the Graph is built; only its values change.
	location []uint32
	m        int // half-edge count; undirected edge count is m/2
}
