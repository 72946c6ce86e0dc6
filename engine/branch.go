package engine

import (
	"context"

	"github.com/cutgraph/mtcut/enforce"
	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
)

// branch picks a branching terminal pair, computes the minimum cut between
// them, and produces two children: a Delete child that commits the cut's
// edges, and a Merge child that instead identifies the two terminals as
// one super-terminal. Each child whose tightened bounds are still live is
// pushed back to the scheduler, and a child that is not live is dropped; p
// itself produces no further work once this returns.
//
// Which side of the cut to act on for the Merge child is left open by the
// source (see DESIGN.md): this implementation merges the two branching
// terminals directly into one vertex, which is the literal reading of
// "identify t_i with t_j as a single super-terminal" and does not depend
// on which side of the min cut either terminal happens to sit on.
func (e *Engine) branch(ctx context.Context, worker int, p *problem.Subproblem) error {
	_, rootIdx, otherIdx, err := starBound(ctx, e.oracle, p)
	if err != nil {
		return err
	}

	root := p.Terminals[rootIdx].Position
	other := p.Terminals[otherIdx].Position
	value, sourceSide, err := e.oracle.MinCut(ctx, p.Graph, root, other)
	if err != nil {
		return err
	}

	// mergeChild clones p.Graph before deleteChild mutates it in place: both
	// children must branch off the same pre-cut graph state.
	merge, err := e.mergeChild(p, rootIdx, otherIdx)
	if err != nil {
		return err
	}
	del, err := e.deleteChild(p, sourceSide, value)
	if err != nil {
		return err
	}

	for _, child := range []*problem.Subproblem{del, merge} {
		if err := tightenBounds(ctx, e.oracle, child); err != nil {
			return err
		}
		if child.Live() {
			e.sched.Push(child, worker)
		}
	}
	return nil
}

// deleteChild commits the cut's crossing edges as permanently severed: it
// mutates p's own graph handle in place (no clone needed — the Merge child
// diverges structurally and clones instead, per §9's shared-graph note)
// and returns a child subproblem with deleted_weight increased by the cut
// value.
func (e *Engine) deleteChild(p *problem.Subproblem, sourceSide []bool, cutValue int64) (*problem.Subproblem, error) {
	g := p.Graph
	type crossing struct{ u, v mtgraph.NodeID }
	var edges []crossing
	for u := mtgraph.NodeID(0); u < mtgraph.NodeID(g.N()); u++ {
		for k := 0; k < g.Degree(u); k++ {
			v := g.EdgeTarget(u, k)
			if v > u && sourceSide[u] != sourceSide[v] {
				edges = append(edges, crossing{u, v})
			}
		}
	}

	var removed int64
	for _, c := range edges {
		w, err := g.RemoveEdge(c.u, c.v)
		if err != nil {
			return nil, err
		}
		removed += w
	}
	enforce.ENFORCE(removed == cutValue)

	child := p.Child("D")
	child.DeletedWeight += removed
	child.RefreshPositions()
	return child, nil
}

// mergeChild identifies the branching pair as a single super-terminal on a
// cloned graph, removing one terminal from the child's terminal list. No
// weight is charged: this branch represents the possibility that the two
// terminals end up in the same final block.
func (e *Engine) mergeChild(p *problem.Subproblem, rootIdx, otherIdx int) (*problem.Subproblem, error) {
	g := p.Graph.Clone()
	child := p.Child("R")
	child.Graph = g
	child.RefreshPositions()

	root := child.Terminals[rootIdx].Position
	other := child.Terminals[otherIdx].Position
	if err := g.MergeVertices(root, other); err != nil {
		return nil, err
	}

	remaining := make([]problem.Terminal, 0, len(child.Terminals)-1)
	for i, t := range child.Terminals {
		if i == otherIdx {
			continue
		}
		remaining = append(remaining, t)
	}
	child.Terminals = remaining
	child.RefreshPositions()
	return child, nil
}
