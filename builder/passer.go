package builder

import "github.com/hqdem/gatesynth/model"

// SafePasser walks the arena entries that existed when it was created, in
// topological order, and is safe to hold across calls that grow the
// arena (AddCell, Replace): new entries created mid-pass are simply not
// visited by this pass, avoiding the iterator-invalidation hazard a plain
// index into b.entries would have. Transformer passes (transform package)
// build one SafePasser per sweep.
type SafePasser struct {
	b   *SubnetBuilder
	idx int
	end int
}

// NewPasser returns a SafePasser bounded to the builder's current size.
func (b *SubnetBuilder) NewPasser() *SafePasser {
	return &SafePasser{b: b, idx: 0, end: len(b.entries)}
}

// Next returns the next entry in the pass, or false once exhausted.
func (p *SafePasser) Next() (model.EntryID, bool) {
	if p.idx >= p.end {
		return 0, false
	}
	id := model.EntryID(p.idx)
	p.idx++
	return id, true
}

// Reset rewinds the passer to its start without re-snapshotting the
// arena's current length.
func (p *SafePasser) Reset() { p.idx = 0 }

// Remaining reports how many entries are left in this pass.
func (p *SafePasser) Remaining() int {
	if p.idx >= p.end {
		return 0
	}
	return p.end - p.idx
}
