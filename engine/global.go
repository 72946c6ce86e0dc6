// Package engine implements the §4.E branch-and-bound search: the worker
// loop that pops a subproblem, prunes or reduces it, closes leaves via the
// max-flow oracle, and branches otherwise, plus the shared global state
// (monotone upper bound, best partition) all workers contend over.
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
)

// Global holds the search-wide state shared by every worker on one
// connected component's subtree: the monotonically non-increasing best
// known cut value, and (if SaveCut is set) the best partition found so far.
//
// upperBound and best are two views of one piece of state — "the best
// solution found so far" — and must change together. upperBound is an
// atomic.Int64 purely so Step's hot pruning check (UpperBound) can read it
// lock-free; every write to it happens under mu, alongside the matching
// best[] write, so a worse candidate's record can never land after a
// better candidate's bound already advanced past it.
type Global struct {
	mu         sync.Mutex
	upperBound atomic.Int64

	saveCut     bool
	best        []int32 // best[originalVertexID] = block index; allocated up front when saveCut is set
	approximate atomic.Bool
}

// NewGlobal returns a Global seeded with an unbounded upper bound.
func NewGlobal(n int, saveCut bool) *Global {
	g := &Global{saveCut: saveCut}
	g.upperBound.Store(problem.Unbounded)
	if saveCut {
		g.best = make([]int32, n)
	}
	return g
}

// UpperBound returns the current global best cut value.
func (g *Global) UpperBound() int64 { return g.upperBound.Load() }

// MarkApproximate records that some subproblem in this search was retired
// early because of context cancellation, so UpperBound/BestPartition
// reflect the best solution found before the cut-off rather than a
// certified optimum.
func (g *Global) MarkApproximate() { g.approximate.Store(true) }

// Approximate reports whether MarkApproximate was ever called.
func (g *Global) Approximate() bool { return g.approximate.Load() }

// tryImproveAndRecord checks whether candidate improves the global upper
// bound and, if so, updates the bound and (when SaveCut is set) records
// sub's current partition as the new best — as a single critical section,
// so the two can never be observed out of sync: without the shared lock, a
// worse candidate's slower recordPartition could still be copying into
// best[] after a better candidate's compare-and-swap already moved the
// bound past it, leaving BestPartition() inconsistent with UpperBound().
// Mirrors the teacher's CAS-retry atomic-min idiom (utils.AtomicMinUint32)
// for the bound itself, widened here to cover the paired state it guards.
func (g *Global) tryImproveAndRecord(candidate int64, sub *problem.Subproblem) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if candidate >= g.upperBound.Load() {
		return false
	}
	g.upperBound.Store(candidate)
	if g.saveCut {
		g.recordPartitionLocked(sub)
	}
	return true
}

// recordPartitionLocked saves sub's current per-vertex block assignment,
// translated back to original vertex ids via Subproblem.Origin, as the new
// best partition. Caller must hold g.mu.
func (g *Global) recordPartitionLocked(sub *problem.Subproblem) {
	gr := sub.Graph
	for u := mtgraph.NodeID(0); u < mtgraph.NodeID(gr.N()); u++ {
		part := gr.Partition(u)
		for _, birth := range gr.ContainedVertices(u) {
			g.best[sub.Origin[birth]] = part
		}
	}
}

// BestPartition returns a copy of the best recorded partition assignment
// (original vertex id -> block index), or nil if SaveCut was false or no
// leaf has closed yet.
func (g *Global) BestPartition() []int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.best == nil || g.upperBound.Load() == problem.Unbounded {
		return nil
	}
	return append([]int32(nil), g.best...)
}
