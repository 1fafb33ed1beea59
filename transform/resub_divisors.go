package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// divisor is a candidate replacement ingredient: some other entry whose
// function, expressed over the same leaves as the pivot, is known.
type divisor struct {
	id model.EntryID
	tt truthtable.TruthTable
}

// collectDivisors scans entries topologically before pivot for ones whose
// support lies entirely within leaves — truthtable.Evaluate already
// reports exactly that via errInputNotInLeaves/ErrSequentialEntry, so
// reusing it here is both correct and the cheapest possible test. The scan
// walks backward from pivot so the nearest (most locally relevant)
// divisors are found first, and stops at maxDivisors.
func collectDivisors(b *builder.SubnetBuilder, p *resubPivot, maxDivisors int) []divisor {
	leafSet := make(map[model.EntryID]bool, len(p.leaves))
	for _, l := range p.leaves {
		leafSet[l] = true
	}

	var out []divisor
	for i := int(p.id) - 1; i >= 0 && len(out) < maxDivisors; i-- {
		id := model.EntryID(i)
		if leafSet[id] {
			continue
		}
		sym := b.Symbol(id)
		if sym == model.IN || sym == model.OUT || sym.IsSequential() {
			continue
		}
		tt, err := truthtable.Evaluate(b, p.leaves, id)
		if err != nil {
			continue
		}
		out = append(out, divisor{id: id, tt: tt})
	}
	return out
}
