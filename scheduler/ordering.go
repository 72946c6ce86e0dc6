// Package scheduler implements the per-thread priority queues of §4.D: N
// independent max-heaps of pending subproblems, with cross-thread
// load-aware placement biased toward the caller's own queue.
package scheduler

import "github.com/cutgraph/mtcut/problem"

// Ordering selects the strict weak ordering used as heap priority, from
// the closed set in §4.D's table. Higher priority is popped first.
type Ordering int

const (
	LowerBoundOrdering Ordering = iota
	SmallGraphOrdering
	BoundSumOrdering
	UpperBoundOrdering
	FewTerminalsOrdering
	BiggerDistanceOrdering
	LowerDistanceOrdering
	MostDeletedOrdering
)

// ParseOrdering maps a configuration string to an Ordering. Unrecognized
// names default to LowerBoundOrdering, matching §4.D's stated default.
func ParseOrdering(name string) Ordering {
	switch name {
	case "small_graph":
		return SmallGraphOrdering
	case "bound_sum":
		return BoundSumOrdering
	case "upper_bound":
		return UpperBoundOrdering
	case "few_terminals":
		return FewTerminalsOrdering
	case "bigger_distance":
		return BiggerDistanceOrdering
	case "lower_distance":
		return LowerDistanceOrdering
	case "most_deleted":
		return MostDeletedOrdering
	case "lower_bound":
		return LowerBoundOrdering
	default:
		return LowerBoundOrdering
	}
}

// Item wraps a subproblem with the ordering its owning Scheduler was
// configured with, so it can implement utils.PQI[Item] without external
// comparator state (every item popped from the same Scheduler carries the
// same ordering).
type Item struct {
	P   *problem.Subproblem
	ord Ordering
}

// Less implements utils.PQI[Item]: the element that should be popped
// first compares as Less.
func (a Item) Less(b Item) bool {
	switch a.ord {
	case SmallGraphOrdering:
		return a.P.Graph.N() < b.P.Graph.N()
	case BoundSumOrdering:
		return (a.P.UpperBound + a.P.LowerBound) < (b.P.UpperBound + b.P.LowerBound)
	case UpperBoundOrdering:
		if a.P.UpperBound == b.P.UpperBound {
			return a.P.LowerBound < b.P.LowerBound
		}
		return a.P.UpperBound < b.P.UpperBound
	case FewTerminalsOrdering:
		if len(a.P.Terminals) == len(b.P.Terminals) {
			return lowerBoundLess(a.P, b.P)
		}
		return len(a.P.Terminals) < len(b.P.Terminals)
	case BiggerDistanceOrdering:
		return (a.P.UpperBound - a.P.LowerBound) > (b.P.UpperBound - b.P.LowerBound)
	case LowerDistanceOrdering:
		return (a.P.UpperBound - a.P.LowerBound) < (b.P.UpperBound - b.P.LowerBound)
	case MostDeletedOrdering:
		return a.P.DeletedWeight > b.P.DeletedWeight
	default: // LowerBoundOrdering
		return lowerBoundLess(a.P, b.P)
	}
}

func lowerBoundLess(a, b *problem.Subproblem) bool {
	if a.LowerBound == b.LowerBound {
		return a.UpperBound < b.UpperBound
	}
	return a.LowerBound < b.LowerBound
}
