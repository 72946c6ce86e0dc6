package maxflow

import (
	"container/heap"
	"context"
)

// findMaxFlow saturates source with infinite excess and discharges active
// nodes by descending height until none remain, then returns the flow
// value realized at sink (sink never becomes active itself, so its excess
// only ever grows and is exactly the max-flow value on completion).
func findMaxFlow(ctx context.Context, net *network, source, sink int) (int64, error) {
	src := &net.nodes[source]
	snk := &net.nodes[sink]
	src.height = uint32(len(net.nodes))
	src.excess = maxExcess

	active := &heightHeap{src}
	for len(*active) != 0 {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		n := heap.Pop(active).(*node)
		discharge(n, snk, active)
	}
	return snk.excess, nil
}

// maxExcess seeds the source with more excess than any finite cut could
// possibly carry away, without risking overflow when summed with real
// edge weights during discharge.
const maxExcess = int64(1) << 62

func discharge(n, sink *node, active *heightHeap) {
	for n.excess > 0 {
		if n.next == len(n.arcs) {
			minHeight := infiniteHeight
			for i := range n.arcs {
				a := &n.arcs[i]
				if a.capacity-a.flow > 0 && a.target.height < minHeight {
					minHeight = a.target.height
				}
			}
			if minHeight == infiniteHeight {
				return // no admissible arc anywhere: n keeps its excess (disconnected from sink)
			}
			n.height = minHeight + 1
			n.next = 0
		}

		// n.scan[n.next], not n.next directly: the seeded permutation from
		// network.finalizeScanOrder decides tie-break order among arcs at
		// the same height, not construction order.
		a := &n.arcs[n.scan[n.next]]
		residual := a.capacity - a.flow
		if residual > 0 && n.height > a.target.height {
			delta := min64(n.excess, residual)
			a.flow += delta
			a.target.arcs[a.reciprocal].flow -= delta
			n.excess -= delta
			a.target.excess += delta

			if a.target.excess == delta && a.target != sink {
				heap.Push(active, a.target)
			}
		}
		n.next++
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// heightHeap is a max-heap on node height: push-relabel makes the most
// progress discharging the currently-tallest active node first.
type heightHeap []*node

func (h heightHeap) Len() int            { return len(h) }
func (h heightHeap) Less(i, j int) bool  { return h[i].height > h[j].height }
func (h heightHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heightHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *heightHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
