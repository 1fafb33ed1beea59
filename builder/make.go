package builder

import "github.com/hqdem/gatesynth/model"

// Make freezes the builder's current arena into an immutable model.Subnet.
// The arena is always reindexed into topological order starting at 0 and
// depths/weights are always current (they are kept current incrementally
// by appendRaw/SetWeight, so no recomputation pass is needed here). When
// cleanup is true, only entries reachable from a primary output, plus
// live primary inputs, survive; everything else (dead strash hits,
// replaced-away cells, uncollapsed BUF chains not already fused by
// fuseThroughBuf) is dropped. When cleanup is false, every entry the
// arena currently holds is emitted, dead or not. The builder remains
// usable afterward either way — Make takes a snapshot, it does not
// consume the arena.
func (b *SubnetBuilder) Make(cleanup bool) *model.Subnet {
	var sn *model.Subnet
	if cleanup {
		sn = b.makeClean()
	} else {
		sn = b.makeAll()
	}
	if b.validate {
		if err := sn.Validate(); err != nil {
			log.WithError(err).Error("Make produced an invalid subnet")
		}
	}
	return sn
}

// makeClean implements Make(cleanup=true): reverse-BFS from every output
// and live input, keeping only entries on that frontier.
func (b *SubnetBuilder) makeClean() *model.Subnet {
	live := make([]bool, len(b.entries))
	var order []model.EntryID

	var mark func(id model.EntryID)
	mark = func(id model.EntryID) {
		if live[id] {
			return
		}
		live[id] = true
		for _, l := range b.entries[id].links {
			mark(l.Entry)
		}
		order = append(order, id)
	}
	for id, e := range b.entries {
		if e.isOutput || e.liveInput {
			mark(model.EntryID(id))
		}
	}

	remap := make(map[model.EntryID]model.EntryID, len(order))
	for newID, oldID := range order {
		remap[oldID] = model.EntryID(newID)
	}

	entries := make([]model.Entry, len(order))
	for newID, oldID := range order {
		old := b.entries[oldID]
		links := make([]model.Link, len(old.links))
		for i, l := range old.links {
			links[i] = model.Link{Entry: remap[l.Entry], Port: l.Port, Inverted: l.Inverted}
		}
		entries[newID] = model.Entry{Type: old.typeID, Links: links}
	}

	return &model.Subnet{
		Catalog: b.catalog,
		Entries: entries,
		NumIn:   b.numIn,
		NumOut:  b.numOut,
	}
}

// makeAll implements Make(cleanup=false): every entry the arena holds is
// kept, dead or not. AddCell never admits a forward reference, so the
// arena is already in topological order and no remapping is needed.
func (b *SubnetBuilder) makeAll() *model.Subnet {
	entries := make([]model.Entry, len(b.entries))
	for id, old := range b.entries {
		links := make([]model.Link, len(old.links))
		copy(links, old.links)
		entries[id] = model.Entry{Type: old.typeID, Links: links}
	}

	return &model.Subnet{
		Catalog: b.catalog,
		Entries: entries,
		NumIn:   b.numIn,
		NumOut:  b.numOut,
	}
}
