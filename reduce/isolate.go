package reduce

import (
	"github.com/cutgraph/mtcut/mtgraph"
	"github.com/cutgraph/mtcut/problem"
	"github.com/cutgraph/mtcut/utils"
)

// ContractIsolatingBlocks shrinks the neighbourhood around each terminal in
// p into that terminal, one bounded BFS block per terminal, grounded on
// addSurroundingAreaToTerminals/contractIsolatingBlocks. A vertex reached
// by more than one terminal's BFS is claimed by whichever terminal was
// first in p.Terminals order; later BFS walks simply treat it as already
// absorbed and expand around it instead. bfsSize caps each block's vertex
// count (the terminal itself included); bfsSize <= 1 performs no
// contraction.
//
// All blocks are discovered before any of them are contracted, exactly as
// in the source: claiming is computed against the pre-contraction
// adjacency, so later terminals' BFS frontiers are unaffected by earlier
// terminals' contractions.
//
// After contracting, every vertex's partition index is reset to 0 and then
// each terminal's slot is tagged with its stable Tag, and p.Terminals'
// cached Position fields are refreshed to the terminals' post-contraction
// slots.
func ContractIsolatingBlocks(p *problem.Subproblem, bfsSize int) error {
	if bfsSize <= 1 {
		return nil
	}
	g := p.Graph

	var claimed utils.Bitmap
	claimed.Grow(uint32(g.N()))
	for _, t := range p.Terminals {
		claimed.Set(uint32(t.Position))
	}

	blocks := make([][]uint32, len(p.Terminals))
	for i, t := range p.Terminals {
		block := []uint32{uint32(t.Position)}
		queue := []mtgraph.NodeID{t.Position}
		size := 1
		for len(queue) > 0 && size < bfsSize {
			n := queue[0]
			queue = queue[1:]
			// Visit heavier edges first: when bfsSize caps the block before
			// every neighbour fits, the most strongly-attached ones are the
			// ones worth isolating into the terminal.
			weights := make([]int64, g.Degree(n))
			for e := range weights {
				weights[e] = g.EdgeWeight(n, e)
			}
			for _, e := range utils.SortGiveIndexesLargestFirst(weights) {
				if size >= bfsSize {
					break
				}
				tgt := g.EdgeTarget(n, e)
				if claimed.IsSet(uint32(tgt)) {
					continue
				}
				claimed.Set(uint32(tgt))
				queue = append(queue, tgt)
				block = append(block, uint32(tgt))
				size++
			}
		}
		blocks[i] = block
	}

	for _, block := range blocks {
		if err := g.ContractVertexSet(block); err != nil {
			return err
		}
	}

	for u := mtgraph.NodeID(0); u < mtgraph.NodeID(g.N()); u++ {
		g.SetPartition(u, 0)
	}
	for i := range p.Terminals {
		pos := g.CurrentPosition(p.Terminals[i].Birth)
		g.SetPartition(pos, p.Terminals[i].Tag)
	}
	p.RefreshPositions()
	return nil
}
