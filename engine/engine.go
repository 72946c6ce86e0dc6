package engine

import (
	"context"

	"github.com/cutgraph/mtcut/maxflow"
	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
	"github.com/cutgraph/mtcut/scheduler"
)

// Engine runs the §4.E branch-and-bound loop for one connected component:
// a shared Global bound/best-partition record, a max-flow Oracle, and the
// scheduler its workers pop from and push back to.
type Engine struct {
	oracle maxflow.Oracle
	sched  *scheduler.Scheduler
	global *Global
}

// New builds an Engine over sched and global, using oracle to answer every
// max-flow question the search needs.
func New(oracle maxflow.Oracle, sched *scheduler.Scheduler, global *Global) *Engine {
	return &Engine{oracle: oracle, sched: sched, global: global}
}

// Step pops one subproblem from worker's own heap and advances the search
// by exactly one node: prune, close a leaf, or branch. It reports whether
// it found anything to do; the driver keeps calling Step in a loop until
// every worker reports false and the scheduler is quiescent (§4.F).
//
// Cancellation is a soft condition, not a hard error (SPEC_FULL.md, Error
// handling): a subproblem whose oracle call was cut short by ctx simply
// stops here — it is retired without children, and the engine marks the
// overall search Approximate, rather than returning an error that would
// make the driver discard every already-computed result.
func (e *Engine) Step(ctx context.Context, worker int) (bool, error) {
	if ctx.Err() != nil {
		e.global.MarkApproximate()
		return false, nil
	}
	p, ok := e.sched.Pop(worker)
	if !ok {
		return false, nil
	}

	if p.LowerBound >= e.global.UpperBound() {
		e.sched.Retire(worker)
		return true, nil
	}

	var err error
	switch {
	case len(p.Terminals) < 2:
		e.closeTrivial(p)
	case p.Graph.N() == len(p.Terminals):
		e.closeComplete(p)
	case len(p.Terminals) == 2:
		err = e.closePair(ctx, p)
	default:
		err = e.branch(ctx, worker, p)
	}
	e.sched.Retire(worker)

	if err != nil {
		if ctx.Err() != nil {
			e.global.MarkApproximate()
			return true, nil
		}
		return true, err
	}
	return true, nil
}

// closeTrivial handles leaf rule 2: fewer than two terminals remain, so no
// separating edge is needed — the branch's deleted_weight alone is its cut
// value. Every vertex belongs to the sole remaining terminal's block, or to
// no block at all if none remain.
func (e *Engine) closeTrivial(p *problem.Subproblem) {
	if len(p.Terminals) == 1 {
		e.tagAll(p.Graph, p.Terminals[0].Tag)
	}
	e.accept(p, p.DeletedWeight)
}

// closeComplete handles leaf rule 3: no non-terminal vertices remain, so
// every surviving edge already runs between two terminals and must be cut.
func (e *Engine) closeComplete(p *problem.Subproblem) {
	e.accept(p, p.DeletedWeight+p.Graph.TotalEdgeWeight())
}

// closePair handles the general two-terminal leaf: the cut equals the
// minimum s-t cut of the current graph, found by the max-flow oracle.
// Non-terminal vertices are tagged from the cut's source side before the
// candidate is recorded, so a subsequent BestPartition reflects this leaf
// if it turns out to win.
func (e *Engine) closePair(ctx context.Context, p *problem.Subproblem) error {
	s := p.Terminals[0].Position
	t := p.Terminals[1].Position
	value, sourceSide, err := e.oracle.MinCut(ctx, p.Graph, s, t)
	if err != nil {
		return err
	}

	g := p.Graph
	sTag, tTag := p.Terminals[0].Tag, p.Terminals[1].Tag
	for u := mtgraph.NodeID(0); u < mtgraph.NodeID(g.N()); u++ {
		if sourceSide[u] {
			g.SetPartition(u, sTag)
		} else {
			g.SetPartition(u, tTag)
		}
	}

	e.accept(p, p.DeletedWeight+value)
	return nil
}

func (e *Engine) tagAll(g *mtgraph.Graph, tag int32) {
	for u := mtgraph.NodeID(0); u < mtgraph.NodeID(g.N()); u++ {
		g.SetPartition(u, tag)
	}
}

// accept records candidate as a global best if it improves on the current
// upper bound, saving the partition alongside it when SaveCut is enabled.
func (e *Engine) accept(p *problem.Subproblem, candidate int64) {
	e.global.tryImproveAndRecord(candidate, p)
}
