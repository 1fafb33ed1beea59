package builder

import "github.com/hqdem/gatesynth/model"

// Replace splices rhs into the builder in place of the cells mapping
// describes: rhs's primary inputs are bound to mapping.Inputs (existing
// builder entries), rhs's internal cells are re-added through AddCell (so
// they structurally hash against whatever the builder already contains),
// and every existing fanout of mapping.Outputs[i] is redirected to rhs
// output i's driver. The entries mapping.Outputs pointed at are not
// deleted immediately — they simply lose their fanout and are swept away
// on the next Make — EntryIDs assigned before a Replace stay valid after
// it.
func (b *SubnetBuilder) Replace(rhs *model.Subnet, mapping IOMap) (Effect, error) {
	if len(mapping.Inputs) != rhs.NumIn || len(mapping.Outputs) != rhs.NumOut {
		return Effect{}, ErrBadMapping
	}
	before := b.costSnapshot(mapping.Outputs)

	rhsIn := rhs.Inputs()
	rhsOut := rhs.Outputs()
	built := make(map[model.EntryID]model.EntryID, len(rhs.Entries))
	for i, in := range rhsIn {
		built[in] = mapping.Inputs[i]
	}

	for id, e := range rhs.Entries {
		eid := model.EntryID(id)
		if _, ok := built[eid]; ok {
			continue // primary input, already bound
		}
		sym := rhs.Symbol(eid)
		if sym == model.OUT {
			continue // outputs are redirects, not new cells
		}
		links := make([]model.Link, len(e.Links))
		for i, l := range e.Links {
			links[i] = model.Link{Entry: built[l.Entry], Port: l.Port, Inverted: l.Inverted}
		}
		built[eid] = b.AddCell(sym, links...)
	}

	b.EnableFanout()
	newRoots := make([]model.EntryID, len(rhsOut))
	for i, outID := range rhsOut {
		driver := rhs.Entries[outID].Links[0]
		newDriver := model.Link{Entry: built[driver.Entry], Inverted: driver.Inverted}
		b.redirectFanout(mapping.Outputs[i], newDriver)
		newRoots[i] = newDriver.Entry
	}

	after := b.costSnapshot(newRoots)
	return Effect{Size: after.Size - before.Size, Depth: after.Depth - before.Depth}, nil
}

// EvaluateReplace reports the Effect Replace would have without mutating
// the builder, by performing the splice against a scratch copy and
// discarding it. Transformer passes use this to decide whether a
// candidate resynthesis is actually an improvement before committing.
func (b *SubnetBuilder) EvaluateReplace(rhs *model.Subnet, mapping IOMap) (Effect, error) {
	scratch := b.clone()
	return scratch.Replace(rhs, mapping)
}

// Clone returns an independent copy of the builder: a fresh arena, a
// fresh strash table, and fresh per-entry link slices, so mutating the
// copy through AddCell/Replace never touches b. Used by design's
// checkpoint snapshots, which need every subnet builder frozen at a
// save_point and left untouched by whatever the shell does afterward.
func (b *SubnetBuilder) Clone() *SubnetBuilder {
	return b.clone()
}

func (b *SubnetBuilder) clone() *SubnetBuilder {
	c := &SubnetBuilder{
		catalog:  b.catalog,
		entries:  make([]entry, len(b.entries)),
		strash:   make(map[strashKey]model.EntryID, len(b.strash)),
		numIn:    b.numIn,
		numOut:   b.numOut,
		validate: b.validate,
	}
	copy(c.entries, b.entries)
	for id := range c.entries {
		links := make([]model.Link, len(c.entries[id].links))
		copy(links, c.entries[id].links)
		c.entries[id].links = links
	}
	for k, v := range b.strash {
		c.strash[k] = v
	}
	return c
}

func (b *SubnetBuilder) redirectFanout(oldID model.EntryID, newDriver model.Link) {
	fanout, _ := b.Fanout(oldID)
	for _, fid := range fanout {
		e := &b.entries[fid]
		for i, l := range e.links {
			if l.Entry == oldID {
				e.links[i] = model.Link{
					Entry:    newDriver.Entry,
					Port:     l.Port,
					Inverted: l.Inverted != newDriver.Inverted,
				}
				b.entries[oldID].refcount--
				b.entries[newDriver.Entry].refcount++
				b.fanout[newDriver.Entry] = append(b.fanout[newDriver.Entry], fid)
			}
		}
	}
	delete(b.fanout, oldID)
}

type costSnapshot struct {
	Size  int
	Depth int
}

// costSnapshot approximates a region's cost as the live entry count and
// max depth reachable from roots — cheap enough to call before and after
// a Replace without a full Make.
func (b *SubnetBuilder) costSnapshot(roots []model.EntryID) costSnapshot {
	visited := make(map[model.EntryID]bool)
	maxDepth := 0
	var visit func(id model.EntryID)
	visit = func(id model.EntryID) {
		if visited[id] {
			return
		}
		visited[id] = true
		if d := int(b.entries[id].depth); d > maxDepth {
			maxDepth = d
		}
		for _, l := range b.entries[id].links {
			visit(l.Entry)
		}
	}
	for _, r := range roots {
		visit(r)
	}
	return costSnapshot{Size: len(visited), Depth: maxDepth}
}
