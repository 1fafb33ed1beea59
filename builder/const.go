package builder

import "github.com/hqdem/gatesynth/model"

// zero returns the EntryID of the builder's singleton ZERO driver,
// creating it on first use.
func (b *SubnetBuilder) zero() model.EntryID { return b.constEntry(model.ZERO) }

// one returns the EntryID of the builder's singleton ONE driver, creating
// it on first use.
func (b *SubnetBuilder) one() model.EntryID { return b.constEntry(model.ONE) }

// Zero returns a non-inverting link to the builder's singleton ZERO
// driver, creating it on first use.
func (b *SubnetBuilder) Zero() model.Link { return model.NewLink(b.zero()) }

// One returns a non-inverting link to the builder's singleton ONE
// driver, creating it on first use.
func (b *SubnetBuilder) One() model.Link { return model.NewLink(b.one()) }

func (b *SubnetBuilder) constEntry(sym model.CellSymbol) model.EntryID {
	typeID := b.catalog.BuiltinID(sym)
	if id, ok := b.lookupStrash(typeID, nil); ok {
		return id
	}
	return b.newEntry(typeID, nil)
}

// isConstZero reports whether link resolves (accounting for its own
// polarity) to the constant 0.
func (b *SubnetBuilder) isConstZero(l model.Link) bool {
	sym := b.Symbol(l.Entry)
	return (sym == model.ZERO && !l.Inverted) || (sym == model.ONE && l.Inverted)
}

// isConstOne reports whether link resolves to the constant 1.
func (b *SubnetBuilder) isConstOne(l model.Link) bool {
	sym := b.Symbol(l.Entry)
	return (sym == model.ONE && !l.Inverted) || (sym == model.ZERO && l.Inverted)
}
