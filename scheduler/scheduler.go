package scheduler

import (
	"sync"
	"sync/atomic"

	"github.com/cutgraph/mtcut/problem"
	"github.com/cutgraph/mtcut/utils"
)

// Scheduler holds one utils.PQ per worker thread plus the load bookkeeping
// (§4.D) used to place newly-spawned subproblems on the least-loaded
// worker. All exported methods are safe for concurrent use by the workers
// they serve.
type Scheduler struct {
	ord     Ordering
	mu      []sync.Mutex
	heaps   []utils.PQ[Item]
	lens    []atomic.Int64
	running []atomic.Bool
}

// New builds a Scheduler with one empty heap per worker thread, all
// ordered by ord.
func New(threads int, ord Ordering) *Scheduler {
	if threads < 1 {
		threads = 1
	}
	return &Scheduler{
		ord:     ord,
		mu:      make([]sync.Mutex, threads),
		heaps:   make([]utils.PQ[Item], threads),
		lens:    make([]atomic.Int64, threads),
		running: make([]atomic.Bool, threads),
	}
}

// NumWorkers returns the number of per-thread heaps.
func (s *Scheduler) NumWorkers() int { return len(s.heaps) }

// load returns a worker's current scheduling weight: queued subproblems
// plus one if it is currently processing a popped subproblem.
func (s *Scheduler) load(i int) int64 {
	l := s.lens[i].Load()
	if s.running[i].Load() {
		l++
	}
	return l
}

// Push places p on the least-loaded worker, ties broken toward caller, and
// returns the worker index it landed on.
//
// Before scanning, it unconditionally clears caller's own running flag.
// This mirrors the source scheduler (per_thread_problem_queue::addProblem),
// which clears sizes[local_id].second at the top of the call before
// computing the minimum — on the apparent theory that the caller, mid-push,
// is about to stop running its current subproblem. In a genuinely
// concurrent setting this is a little more than a local bias: the flag is
// shared scheduler state, so until caller's own next Pop runs, every other
// worker's subsequent Push also sees caller as idle, even though caller may
// still be busy with the subproblem it popped earlier. We preserve this
// behaviour rather than silently fix it (see DESIGN.md); it can only skew
// placement, never lose or duplicate a subproblem.
func (s *Scheduler) Push(p *problem.Subproblem, caller int) int {
	s.running[caller].Store(false)

	best := 0
	bestLoad := s.load(0)
	for i := 1; i < len(s.heaps); i++ {
		if l := s.load(i); l < bestLoad {
			bestLoad, best = l, i
		}
	}
	if s.load(caller) == bestLoad {
		best = caller
	}

	s.mu[best].Lock()
	s.heaps[best].Push(Item{P: p, ord: s.ord})
	s.mu[best].Unlock()
	s.lens[best].Add(1)
	return best
}

// Pop removes and returns the highest-priority subproblem from worker
// localID's own heap, marking that worker running. ok is false if the
// heap was empty.
func (s *Scheduler) Pop(localID int) (p *problem.Subproblem, ok bool) {
	s.mu[localID].Lock()
	if len(s.heaps[localID]) == 0 {
		s.mu[localID].Unlock()
		return nil, false
	}
	top := s.heaps[localID].Pop()
	s.mu[localID].Unlock()
	s.lens[localID].Add(-1)
	s.running[localID].Store(true)
	return top.P, true
}

// Retire marks localID as no longer processing a popped subproblem. Call
// after a worker finishes a leaf or finishes branching (both children
// pushed).
func (s *Scheduler) Retire(localID int) {
	s.running[localID].Store(false)
}

// Empty reports whether worker i's own heap is currently empty.
func (s *Scheduler) Empty(i int) bool { return s.lens[i].Load() == 0 }

// AllEmpty reports whether every worker's heap is currently empty.
func (s *Scheduler) AllEmpty() bool {
	for i := range s.lens {
		if s.lens[i].Load() != 0 {
			return false
		}
	}
	return true
}

// AnyRunning reports whether any worker is currently marked as processing
// a popped subproblem. Combined with AllEmpty, this is the quiescence test
// the driver polls for: no queued work and no worker mid-step means the
// search tree is fully explored.
func (s *Scheduler) AnyRunning() bool {
	for i := range s.running {
		if s.running[i].Load() {
			return true
		}
	}
	return false
}

// Size returns the total number of subproblems queued across all workers.
func (s *Scheduler) Size() int64 {
	var sum int64
	for i := range s.lens {
		sum += s.lens[i].Load()
	}
	return sum
}
