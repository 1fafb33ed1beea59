package cut

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// ReconvergenceCut builds a k-bounded cut around root by repeatedly
// expanding the deepest non-boundary entry on the current frontier into
// its fanins, the same priority-frontier idea a shortest-path relaxation
// loop uses to always settle the most promising node next. Unlike
// CutExtractor's exhaustive enumeration, this produces exactly one cut sized
// to capture reconvergent paths rather than every k-feasible
// possibility, and is the cut resubstitute uses for divisor collection.
func ReconvergenceCut(b *builder.SubnetBuilder, root model.EntryID, k int) Cut {
	frontier := []model.EntryID{root}

	for len(frontier) < k {
		idx, ok := deepestExpandable(b, frontier)
		if !ok {
			break
		}
		expand := frontier[idx]
		links := b.Links(expand)
		if len(links) == 0 {
			break
		}
		frontier = append(frontier[:idx], frontier[idx+1:]...)
		for _, l := range links {
			if !containsEntry(frontier, l.Entry) {
				frontier = append(frontier, l.Entry)
			}
		}
	}

	return newCut(root, frontier)
}

func deepestExpandable(b *builder.SubnetBuilder, frontier []model.EntryID) (int, bool) {
	best := -1
	bestDepth := int64(-1)
	for i, id := range frontier {
		sym := b.Symbol(id)
		if len(b.Links(id)) == 0 || sym.IsSequential() {
			continue
		}
		if d := int64(b.Depth(id)); d > bestDepth {
			bestDepth = d
			best = i
		}
	}
	return best, best >= 0
}

func containsEntry(s []model.EntryID, id model.EntryID) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}
	return false
}
