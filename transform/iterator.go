package transform

import (
	"sort"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// SubnetIterator produces the internal entries a pass should visit, in
// whatever order best serves that pass's objective. Like SafePasser, an
// iterator is bounded at creation time: entries appended mid-pass (by a
// replacement the pass itself just committed) are never revisited in the
// same walk.
type SubnetIterator interface {
	Next() (model.EntryID, bool)
}

// AreaSubnetIterator walks internal entries in arena order — the order
// they were constructed, which for a topologically-compacted subnet means
// fanins are always visited before the fanouts that consume them. This is
// the natural order for area-driven passes: collapsing a small cut near
// the inputs first tends to shrink the cuts available to entries above it.
type AreaSubnetIterator struct {
	b *builder.SubnetBuilder
	p *builder.SafePasser
}

// NewAreaSubnetIterator snapshots b's current internal (non-IO) entries.
func NewAreaSubnetIterator(b *builder.SubnetBuilder) *AreaSubnetIterator {
	return &AreaSubnetIterator{b: b, p: b.NewPasser()}
}

func (it *AreaSubnetIterator) Next() (model.EntryID, bool) {
	for {
		id, ok := it.p.Next()
		if !ok {
			return 0, false
		}
		if isRewritable(it.b, id) {
			return id, true
		}
	}
}

// isRewritable reports whether id is a candidate for pass rewriting: an
// internal combinational cell, not a primary port or a sequential element.
func isRewritable(b *builder.SubnetBuilder, id model.EntryID) bool {
	sym := b.Symbol(id)
	if sym == model.IN || sym == model.OUT || sym == model.ZERO || sym == model.ONE {
		return false
	}
	return !sym.IsSequential()
}

// DepthSubnetIterator visits entries in descending depth order, snapshot
// at construction time: depth-driven passes want to attack the entries on
// (or near) the critical path first, since collapsing those is what can
// actually shorten it.
type DepthSubnetIterator struct {
	order []model.EntryID
	pos   int
}

// NewDepthSubnetIterator snapshots b's current entries sorted by
// descending depth (ties broken by ascending EntryID for determinism).
func NewDepthSubnetIterator(b *builder.SubnetBuilder) *DepthSubnetIterator {
	p := b.NewPasser()
	var order []model.EntryID
	for {
		id, ok := p.Next()
		if !ok {
			break
		}
		if isRewritable(b, id) {
			order = append(order, id)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := b.Depth(order[i]), b.Depth(order[j])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})
	return &DepthSubnetIterator{order: order}
}

func (it *DepthSubnetIterator) Next() (model.EntryID, bool) {
	if it.pos >= len(it.order) {
		return 0, false
	}
	id := it.order[it.pos]
	it.pos++
	return id, true
}
