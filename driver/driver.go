// Package driver implements §4.F: the top-level entry point that splits an
// input graph into per-component subproblems, shrinks the neighbourhood
// around each terminal, runs the branch-and-bound engine on each component
// to quiescence, and sums the per-component optima.
package driver

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cutgraph/mtcut/engine"
	"github.com/cutgraph/mtcut/maxflow"
	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
	"github.com/cutgraph/mtcut/reduce"
	"github.com/cutgraph/mtcut/scheduler"
	"github.com/cutgraph/mtcut/utils"
)

// Options configures one driver run.
type Options struct {
	Threads int
	Queue   scheduler.Ordering
	BFSSize int
	SaveCut bool
	Seed    int64 // seeds the max-flow oracle's arc-scan tie-break order
}

// Result is the outcome of Run: the total minimum multiway-cut weight
// across every component, and (if Options.SaveCut was set) the winning
// partition, indexed by original vertex id. Approximate is set if ctx was
// cancelled before every component's search certified its optimum — Total
// and Partition still hold the best solution found before the cut-off.
type Result struct {
	Total       int64
	Partition   []int32 // nil unless SaveCut was requested
	Approximate bool
}

// Run computes the minimum multiway cut of g with the given terminals.
// Components with fewer than two terminals contribute 0 and are skipped
// entirely, per §4.B. Each qualifying component is solved independently
// and concurrently via errgroup. Cancelling ctx stops every component's
// workers and Run returns the best result found so far with Approximate
// set; any other error from a component is returned instead of a result.
func Run(ctx context.Context, g *mtgraph.Graph, terminals []uint32, opts Options) (Result, error) {
	var watch utils.Watch
	watch.Start()

	n := g.N()
	roots := reduce.Split(g, terminals, "")
	log.Info().Int("components", len(roots)).Int("vertices", n).Msg("split into components")

	var result Result
	if opts.SaveCut {
		result.Partition = make([]int32, n)
	}

	grp, gctx := errgroup.WithContext(ctx)
	totals := make([]int64, len(roots))
	partials := make([][]int32, len(roots))
	approx := make([]bool, len(roots))

	for i, root := range roots {
		i, root := i, root
		grp.Go(func() error {
			total, partition, wasApprox, err := runComponent(gctx, n, root, opts)
			if err != nil {
				return err
			}
			totals[i] = total
			partials[i] = partition
			approx[i] = wasApprox
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	for i := range totals {
		result.Total += totals[i]
		if approx[i] {
			result.Approximate = true
		}
	}
	if opts.SaveCut {
		mergePartitions(result.Partition, roots, partials)
	}
	log.Info().Dur("elapsed", watch.Elapsed()).Int64("total", result.Total).Bool("approximate", result.Approximate).Msg("search complete")
	return result, nil
}

// runComponent solves one root subproblem to completion: reduces it,
// seeds a fresh scheduler, and runs Options.Threads workers until
// quiescent. totalVertices sizes the best-partition array, since
// Subproblem.Origin translates back into the original driver-wide vertex
// id space, not this component's own (much smaller) vertex count.
//
// If ctx is cancelled before reduction even tightens the root's bounds,
// this component contributes nothing and is reported approximate rather
// than failing the whole driver run — the same soft-cancellation contract
// Engine.Step applies once the scheduler loop is underway.
func runComponent(ctx context.Context, totalVertices int, root *problem.Subproblem, opts Options) (int64, []int32, bool, error) {
	if err := reduce.ContractIsolatingBlocks(root, opts.BFSSize); err != nil {
		return 0, nil, false, err
	}

	oracle := maxflow.PushRelabel{Seed: opts.Seed}
	if err := tightenRoot(ctx, oracle, root); err != nil {
		if ctx.Err() != nil {
			return 0, nil, true, nil
		}
		return 0, nil, false, err
	}

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	sched := scheduler.New(threads, opts.Queue)
	global := engine.NewGlobal(totalVertices, opts.SaveCut)
	eng := engine.New(oracle, sched, global)
	sched.Push(root, 0)

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		w := w
		grp.Go(func() error {
			return runWorker(gctx, eng, sched, w)
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, nil, false, err
	}
	return global.UpperBound(), global.BestPartition(), global.Approximate(), nil
}

// runWorker drives one scheduler slot until the whole scheduler is
// quiescent: no worker has anything queued and none is mid-step. A worker
// that finds its own heap empty still must keep polling, since another
// worker's branch may push it fresh work. A cancelled ctx also ends the
// loop: once Step starts reporting nothing-to-do because every pop sees
// ctx already done, there is no further progress to wait for.
func runWorker(ctx context.Context, eng *engine.Engine, sched *scheduler.Scheduler, id int) error {
	for {
		did, err := eng.Step(ctx, id)
		if err != nil {
			return err
		}
		if !did {
			if ctx.Err() != nil || (sched.AllEmpty() && !sched.AnyRunning()) {
				return nil
			}
			continue
		}
	}
}

func tightenRoot(ctx context.Context, oracle maxflow.Oracle, p *problem.Subproblem) error {
	return engine.TightenBounds(ctx, oracle, p)
}

// mergePartitions copies each component's slice of the best-partition
// array (already indexed by original vertex id, via Subproblem.Origin)
// into the driver-wide result, restricted to the original ids root.Origin
// actually names — every other index in partial is an unwritten zero
// value belonging to some other component, not this one's block 0.
func mergePartitions(out []int32, roots []*problem.Subproblem, partials [][]int32) {
	for i, root := range roots {
		partial := partials[i]
		if partial == nil {
			continue
		}
		for _, origID := range root.Origin {
			out[origID] = partial[origID]
		}
	}
}
