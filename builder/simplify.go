package builder

import (
	"sort"

	"github.com/hqdem/gatesynth/model"
)

// addAnd implements AND simplification: a constant-0 input short-circuits
// to 0, constant-1 inputs are dropped, duplicate literals collapse
// (idempotence), and complementary literals force 0.
func (b *SubnetBuilder) addAnd(links []model.Link) model.EntryID {
	seen := make(map[model.EntryID]bool, len(links))
	var result []model.Link
	for _, l := range links {
		if b.isConstZero(l) {
			return b.zero()
		}
		if b.isConstOne(l) {
			continue
		}
		if pol, ok := seen[l.Entry]; ok {
			if pol == l.Inverted {
				continue // AND(x, x) = x
			}
			return b.zero() // AND(x, ~x) = 0
		}
		seen[l.Entry] = l.Inverted
		result = append(result, l)
	}
	if len(result) == 0 {
		return b.one()
	}
	if len(result) == 1 {
		return b.resolveLiteral(result[0])
	}
	return b.commitSymmetric(model.AND, result)
}

// addOr mirrors addAnd with ZERO/ONE swapped.
func (b *SubnetBuilder) addOr(links []model.Link) model.EntryID {
	seen := make(map[model.EntryID]bool, len(links))
	var result []model.Link
	for _, l := range links {
		if b.isConstOne(l) {
			return b.one()
		}
		if b.isConstZero(l) {
			continue
		}
		if pol, ok := seen[l.Entry]; ok {
			if pol == l.Inverted {
				continue // OR(x, x) = x
			}
			return b.one() // OR(x, ~x) = 1
		}
		seen[l.Entry] = l.Inverted
		result = append(result, l)
	}
	if len(result) == 0 {
		return b.zero()
	}
	if len(result) == 1 {
		return b.resolveLiteral(result[0])
	}
	return b.commitSymmetric(model.OR, result)
}

type xorOcc struct {
	count  int
	parity bool
}

// addXor implements GF(2)-sum simplification: a literal ~x is x XOR 1, so
// two occurrences of the same variable cancel (folding their combined
// polarity into a global constant), and an odd count collapses to a
// single literal carrying the combined polarity: pairs of the same
// variable cancel, and a complementary pair folds to the constant ONE.
func (b *SubnetBuilder) addXor(links []model.Link) model.EntryID {
	occ := make(map[model.EntryID]*xorOcc)
	globalParity := false
	for _, l := range links {
		if b.isConstZero(l) {
			continue
		}
		if b.isConstOne(l) {
			globalParity = !globalParity
			continue
		}
		o, ok := occ[l.Entry]
		if !ok {
			o = &xorOcc{}
			occ[l.Entry] = o
		}
		o.count++
		o.parity = o.parity != l.Inverted
	}

	keys := make([]model.EntryID, 0, len(occ))
	for k := range occ {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var result []model.Link
	for _, k := range keys {
		o := occ[k]
		if o.count%2 == 1 {
			result = append(result, model.Link{Entry: k, Inverted: o.parity})
		} else {
			globalParity = globalParity != o.parity
		}
	}

	if len(result) == 0 {
		if globalParity {
			return b.one()
		}
		return b.zero()
	}
	if globalParity {
		result[0] = result[0].Inv()
	}
	if len(result) == 1 {
		return b.resolveLiteral(result[0])
	}
	return b.commitSymmetric(model.XOR, result)
}

// addMaj implements ternary-majority simplification: two equal literals
// dominate, two complementary literals cancel leaving the third operand,
// and a constant operand degrades MAJ to AND (const 0) or OR (const 1).
func (b *SubnetBuilder) addMaj(links []model.Link) model.EntryID {
	b.invariant(len(links) == 3, "MAJ takes exactly 3 inputs")

	zeros, ones := 0, 0
	var vars []model.Link
	for _, l := range links {
		switch {
		case b.isConstZero(l):
			zeros++
		case b.isConstOne(l):
			ones++
		default:
			vars = append(vars, l)
		}
	}
	if zeros >= 2 {
		return b.zero()
	}
	if ones >= 2 {
		return b.one()
	}
	if zeros == 1 {
		return b.addAnd(vars)
	}
	if ones == 1 {
		return b.addOr(vars)
	}

	a, c, d := vars[0], vars[1], vars[2]
	if lit, ok := majDuplicate(a, c, d); ok {
		return b.resolveLiteral(lit)
	}
	return b.commitSymmetric(model.MAJ, vars)
}

// majDuplicate detects MAJ's two degenerate 3-variable cases: two equal
// literals dominate, two complementary literals cancel to the third.
func majDuplicate(a, c, d model.Link) (model.Link, bool) {
	pairs := [][2]model.Link{{a, c}, {a, d}, {c, d}}
	others := []model.Link{d, c, a}
	for i, p := range pairs {
		if p[0].Entry == p[1].Entry {
			if p[0].Inverted == p[1].Inverted {
				return p[0], true
			}
			return others[i], true
		}
	}
	return model.Link{}, false
}

// resolveLiteral materializes a single literal as a plain EntryID,
// inserting an explicit NOT when the literal is inverted — AddCell
// always returns a non-inverted reference, so any inversion surviving
// simplification must be made explicit.
func (b *SubnetBuilder) resolveLiteral(l model.Link) model.EntryID {
	if l.Inverted {
		return b.addNot(model.Link{Entry: l.Entry})
	}
	return l.Entry
}

func (b *SubnetBuilder) commitSymmetric(sym model.CellSymbol, links []model.Link) model.EntryID {
	canon := canonicalizeLinks(sym, links)
	typeID := b.catalog.BuiltinID(sym)
	if id, ok := b.lookupStrash(typeID, canon); ok {
		return id
	}
	return b.newEntry(typeID, canon)
}
