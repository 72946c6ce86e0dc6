package engine

import (
	"context"

	"github.com/cutgraph/mtcut/maxflow"
	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
	"github.com/cutgraph/mtcut/utils"
)

// starBound computes the §4.E spanning-star lower bound: the sum of
// max-flows from the highest-degree terminal (the star's root) to every
// other terminal. It also returns the branching-pair selection the engine
// needs next — the root and the index of the terminal whose flow from root
// is smallest, ties broken by smaller degree then smaller input index —
// since those flows are exactly the ones this function already computed;
// recomputing them separately would repeat the same max-flow calls.
func starBound(ctx context.Context, oracle maxflow.Oracle, p *problem.Subproblem) (sum int64, rootIdx, otherIdx int, err error) {
	g := p.Graph
	rootIdx = highestDegreeTerminal(g, p.Terminals)
	root := p.Terminals[rootIdx].Position

	bestFlow := int64(problem.Unbounded)
	otherIdx = -1
	for i, term := range p.Terminals {
		if i == rootIdx {
			continue
		}
		flow, _, ferr := oracle.MinCut(ctx, g, root, term.Position)
		if ferr != nil {
			return 0, 0, 0, ferr
		}
		sum += flow
		if flow < bestFlow || (flow == bestFlow && branchTieBetter(g, p.Terminals, i, otherIdx)) {
			bestFlow = flow
			otherIdx = i
		}
	}
	return sum, rootIdx, otherIdx, nil
}

// branchTieBetter reports whether candidate i is preferred over the
// current pick cur under the tie-break rule: smaller terminal degree,
// then smaller input index. cur == -1 means no candidate chosen yet.
func branchTieBetter(g *mtgraph.Graph, terms []problem.Terminal, i, cur int) bool {
	if cur == -1 {
		return true
	}
	di := g.WeightedDegree(terms[i].Position)
	dc := g.WeightedDegree(terms[cur].Position)
	if di != dc {
		return di < dc
	}
	return i < cur
}

func highestDegreeTerminal(g *mtgraph.Graph, terms []problem.Terminal) int {
	best := 0
	bestDeg := g.WeightedDegree(terms[0].Position)
	for i := 1; i < len(terms); i++ {
		if d := g.WeightedDegree(terms[i].Position); d > bestDeg {
			bestDeg = d
			best = i
		}
	}
	return best
}

// isolatingBound computes the §4.E isolating-cut upper-bound heuristic:
// for each terminal, the minimum cut separating it from the union of every
// other terminal, then sum - max over those k values — the standard
// multiway-cut 2-approximation.
func isolatingBound(ctx context.Context, oracle maxflow.Oracle, p *problem.Subproblem) (int64, error) {
	terms := p.Terminals
	g := p.Graph
	values := make([]int64, len(terms))
	others := make([]mtgraph.NodeID, 0, len(terms)-1)
	for i, t := range terms {
		others = others[:0]
		for j, o := range terms {
			if j != i {
				others = append(others, o.Position)
			}
		}
		v, err := oracle.IsolatingCut(ctx, g, t.Position, others)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return utils.Sum(values) - utils.MaxSlice(values), nil
}

// TightenBounds is tightenBounds, exported for the driver to apply to a
// freshly reduced root subproblem before it enters the scheduler for the
// first time.
func TightenBounds(ctx context.Context, oracle maxflow.Oracle, p *problem.Subproblem) error {
	return tightenBounds(ctx, oracle, p)
}

// tightenBounds applies both bound-tightening steps a freshly branched
// child receives before being pushed back to the scheduler.
func tightenBounds(ctx context.Context, oracle maxflow.Oracle, p *problem.Subproblem) error {
	star, _, _, err := starBound(ctx, oracle, p)
	if err != nil {
		return err
	}
	p.LowerBound = utils.Max(p.LowerBound, star)

	iso, err := isolatingBound(ctx, oracle, p)
	if err != nil {
		return err
	}
	p.UpperBound = utils.Min(p.UpperBound, iso)
	return nil
}
