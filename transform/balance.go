package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// balanceable lists the symmetric, associative symbols balance rebuilds.
var balanceable = map[model.CellSymbol]bool{
	model.AND: true,
	model.OR:  true,
	model.XOR: true,
}

type balancePass struct{}

// Balance builds a Pass that rebalances maximal AND/OR/XOR chains into
// minimum-depth binary trees. A chain is the set of leaves reachable from
// a root by repeatedly descending into same-symbol, uninverted, single-
// fanout fanins — stopping at a shared fanin preserves whatever sharing
// strash already found, so balancing never duplicates logic to shorten a
// path.
func Balance() Pass {
	return &balancePass{}
}

func (p *balancePass) Name() string { return "balance" }

func (p *balancePass) Run(b *builder.SubnetBuilder) error {
	it := NewAreaSubnetIterator(b)
	replacer := DepthReplacer{ZeroCost: true}
	applied := 0

	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		sym := b.Symbol(id)
		if !balanceable[sym] {
			continue
		}

		leaves := collectChain(b, id, sym)
		if len(leaves) < 3 {
			continue // already a single gate, nothing to balance
		}

		scratch := builderScratchFor(b, leaves)
		root := scratch.AddCellTree(sym, scratchLinks(leaves), 2)
		scratch.AddOutput(model.NewLink(root))

		sub := scratch.Make(true)
		mapping := builder.IOMap{Inputs: entryIDsOf(leaves), Outputs: []model.EntryID{id}}
		effect, err := b.EvaluateReplace(sub, mapping)
		if err != nil || !replacer.Accept(effect) {
			continue
		}
		if _, err := b.Replace(sub, mapping); err == nil {
			applied++
		}
	}

	log.WithField("applied", applied).Info("balance pass finished")
	return nil
}

// chainLeaf is one leaf of a flattened associative chain: the builder
// entry it binds to, and whether the path down to it inverted the value.
type chainLeaf struct {
	entry    model.EntryID
	inverted bool
}

// collectChain flattens the maximal sym-chain rooted at id: a fanin is
// folded into the chain only when it has the same symbol, is not shared
// elsewhere (refcount 1), and is reached uninverted — an inverted or
// shared fanin is a chain boundary and becomes a leaf as-is.
func collectChain(b *builder.SubnetBuilder, id model.EntryID, sym model.CellSymbol) []chainLeaf {
	var leaves []chainLeaf
	var visit func(e model.EntryID, inv bool, isRoot bool)
	visit = func(e model.EntryID, inv bool, isRoot bool) {
		if !isRoot && (inv || b.Symbol(e) != sym || b.Refcount(e) != 1) {
			leaves = append(leaves, chainLeaf{entry: e, inverted: inv})
			return
		}
		for _, l := range b.Links(e) {
			visit(l.Entry, l.Inverted, false)
		}
	}
	visit(id, false, true)
	return leaves
}

func entryIDsOf(leaves []chainLeaf) []model.EntryID {
	out := make([]model.EntryID, len(leaves))
	for i, l := range leaves {
		out[i] = l.entry
	}
	return out
}

func scratchLinks(leaves []chainLeaf) []model.Link {
	out := make([]model.Link, len(leaves))
	for i, l := range leaves {
		link := model.NewLink(model.EntryID(i))
		if l.inverted {
			link = link.Inv()
		}
		out[i] = link
	}
	return out
}

// builderScratchFor builds a standalone builder with one fresh primary
// input per chain leaf, in the same order leaves is given — the scratch
// builder's EntryID i is leaf i's stand-in, matching scratchLinks and the
// Inputs slice a caller passes to IOMap.
func builderScratchFor(b *builder.SubnetBuilder, leaves []chainLeaf) *builder.SubnetBuilder {
	scratch := builder.NewBuilder()
	for range leaves {
		scratch.AddInput()
	}
	return scratch
}
