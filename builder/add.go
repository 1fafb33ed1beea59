package builder

import (
	"github.com/hqdem/gatesynth/model"
)

// AddInput appends a new primary input and returns its EntryID. Inputs
// must be added before any cell that references them (the arena's
// topological invariant), and conventionally before any internal cell is
// added at all.
func (b *SubnetBuilder) AddInput() model.EntryID {
	typeID := b.catalog.BuiltinID(model.IN)
	id := b.appendRaw(typeID, nil)
	b.entries[id].liveInput = true
	b.numIn++
	return id
}

// AddOutput appends a primary output driven by link and returns its
// EntryID. Unlike internal cells, outputs are never strashed or
// simplified away: every AddOutput call produces a distinct entry, since
// two outputs may legitimately expose the same driver.
func (b *SubnetBuilder) AddOutput(link model.Link) model.EntryID {
	link = b.fuseThroughBuf(link)
	id := b.appendRaw(b.catalog.BuiltinID(model.OUT), []model.Link{link})
	b.entries[id].isOutput = true
	b.numOut++
	return id
}

// newEntry appends a brand-new, strashed entry for (typeID, canonLinks),
// bumping the refcount of every referenced entry and recomputing depth.
// canonLinks must already be canonicalized; callers that want
// order-preserving semantics (asymmetric cells) pass links unchanged.
func (b *SubnetBuilder) newEntry(typeID model.CellTypeID, canonLinks []model.Link) model.EntryID {
	id := b.appendRaw(typeID, canonLinks)
	b.storeStrash(typeID, canonLinks, id)
	return id
}

// appendRaw is the only method that grows the arena. It does not strash;
// callers that want dedup call newEntry (which also registers the strash
// key) instead.
func (b *SubnetBuilder) appendRaw(typeID model.CellTypeID, links []model.Link) model.EntryID {
	b.invariant(len(links) <= MaxFanin, "fanin exceeds MaxFanin")
	id := model.EntryID(len(b.entries))
	maxDepth := uint32(0)
	for _, l := range links {
		src := &b.entries[l.Entry]
		b.invariant(src.refcount < MaxFanout, "fanout exceeds MaxFanout")
		src.refcount++
		if d := src.depth; d > maxDepth {
			maxDepth = d
		}
	}
	depth := uint32(0)
	if len(links) > 0 {
		depth = maxDepth + 1
	}
	b.entries = append(b.entries, entry{typeID: typeID, links: links, depth: depth})
	if b.fanoutEnabled {
		for _, l := range links {
			b.fanout[l.Entry] = append(b.fanout[l.Entry], id)
		}
	}
	return id
}

// fuseThroughBuf resolves link through any chain of non-inverting BUF
// entries, composing polarity onto the result: a BUF whose own fanin is
// itself a BUF is fused directly onto its ultimate driver.
func (b *SubnetBuilder) fuseThroughBuf(link model.Link) model.Link {
	for {
		e := b.entries[link.Entry]
		t := b.catalog.Get(e.typeID)
		if t == nil || t.Symbol != model.BUF || len(e.links) != 1 {
			return link
		}
		inner := e.links[0]
		link = model.Link{Entry: inner.Entry, Inverted: link.Inverted != inner.Inverted}
	}
}

// AddCell appends (or, via structural hashing / algebraic simplification,
// reuses) a cell of the given symbol over links, and returns its EntryID.
// AddCell is total: malformed input (bad arity, a forward reference) is a
// programmer error and panics rather than returning an error.
func (b *SubnetBuilder) AddCell(sym model.CellSymbol, links ...model.Link) model.EntryID {
	b.invariant(len(links) <= MaxFanin, "fanin exceeds MaxFanin for "+sym.String())
	fused := false
	for i, l := range links {
		b.invariant(int(l.Entry) < len(b.entries), "link references a non-existent entry")
		links[i] = b.fuseThroughBuf(l)
		fused = fused || links[i].Entry != l.Entry
	}
	if n, ok := sym.FixedArity(); ok && sym != model.OUT {
		b.invariant(len(links) == n, "arity mismatch for "+sym.String())
	}

	switch sym {
	case model.BUF:
		if fused {
			// BUF over a BUF chain collapses onto the chain's driver.
			return b.resolveLiteral(links[0])
		}
		return b.addBuf(links[0])
	case model.NOT:
		return b.addNot(links[0])
	case model.AND:
		return b.addAnd(links)
	case model.OR:
		return b.addOr(links)
	case model.XOR:
		return b.addXor(links)
	case model.NAND:
		return b.addNot0(b.addAnd(links))
	case model.NOR:
		return b.addNot0(b.addOr(links))
	case model.XNOR:
		return b.addNot0(b.addXor(links))
	case model.MAJ:
		return b.addMaj(links)
	default:
		canon := canonicalizeLinks(sym, links)
		typeID := b.catalog.BuiltinID(sym)
		if id, ok := b.lookupStrash(typeID, canon); ok {
			return id
		}
		return b.newEntry(typeID, canon)
	}
}

// AddTypedCell appends (or reuses, via structural hashing) a cell of a
// specific, already-registered CellTypeID rather than a built-in symbol —
// the insertion path techmap uses to splice in a library cell, whose type
// carries pin-order-sensitive NLDM data that a symbol-keyed AddCell call
// has no way to select between two cells of the same Boolean function.
func (b *SubnetBuilder) AddTypedCell(typeID model.CellTypeID, links ...model.Link) model.EntryID {
	t := b.catalog.Get(typeID)
	b.invariant(t != nil, "link references an unregistered cell type")
	b.invariant(len(links) <= MaxFanin, "fanin exceeds MaxFanin")
	for i, l := range links {
		b.invariant(int(l.Entry) < len(b.entries), "link references a non-existent entry")
		links[i] = b.fuseThroughBuf(l)
	}
	canon := canonicalizeLinks(t.Symbol, links)
	if id, ok := b.lookupStrash(typeID, canon); ok {
		return id
	}
	return b.newEntry(typeID, canon)
}

// addNot0 wraps an already-materialized EntryID with a non-inverting NOT,
// used by the NAND/NOR/XNOR shorthands which are defined as the negation
// of AND/OR/XOR.
func (b *SubnetBuilder) addNot0(id model.EntryID) model.EntryID {
	return b.addNot(model.Link{Entry: id})
}

func (b *SubnetBuilder) addBuf(l model.Link) model.EntryID {
	if l.Inverted {
		return b.addNot(model.Link{Entry: l.Entry})
	}
	typeID := b.catalog.BuiltinID(model.BUF)
	canon := []model.Link{l}
	if id, ok := b.lookupStrash(typeID, canon); ok {
		return id
	}
	return b.newEntry(typeID, canon)
}

func (b *SubnetBuilder) addNot(l model.Link) model.EntryID {
	if l.Inverted {
		// NOT(~x) = x: double negation cancels outright.
		return l.Entry
	}
	if b.Symbol(l.Entry) == model.NOT {
		// NOT(NOT(x)) = x: cancel against the existing NOT entry.
		return b.resolveLiteral(b.entries[l.Entry].links[0])
	}
	typeID := b.catalog.BuiltinID(model.NOT)
	canon := []model.Link{l}
	if id, ok := b.lookupStrash(typeID, canon); ok {
		return id
	}
	return b.newEntry(typeID, canon)
}
