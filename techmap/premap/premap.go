package premap

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// basis names the destination technology-independent gate set a lowering
// targets; every rule below is keyed off which of AND/OR/XOR/MAJ the basis
// keeps as a primitive.
type basis struct {
	hasOR  bool
	hasXOR bool
	hasMAJ bool
}

var (
	aigBasis = basis{hasOR: true}
	xagBasis = basis{hasOR: true, hasXOR: true}
	migBasis = basis{hasMAJ: true}
	xmgBasis = basis{hasMAJ: true, hasXOR: true}
)

// ToAIG lowers every MAJ and XOR cell into AND/OR/NOT, leaving AND/OR/NOT
// (and sequential/port cells) untouched.
func ToAIG(b *builder.SubnetBuilder) *builder.SubnetBuilder { return lower(b, aigBasis) }

// ToXAG is ToAIG but keeps XOR as a native primitive.
func ToXAG(b *builder.SubnetBuilder) *builder.SubnetBuilder { return lower(b, xagBasis) }

// ToMIG lowers AND/OR into MAJ(a,b,0)/MAJ(a,b,1) and XOR into MAJ-based
// OR/AND composition, leaving only MAJ/NOT as combinational primitives.
func ToMIG(b *builder.SubnetBuilder) *builder.SubnetBuilder { return lower(b, migBasis) }

// ToXMG is ToMIG but keeps XOR as a native primitive.
func ToXMG(b *builder.SubnetBuilder) *builder.SubnetBuilder { return lower(b, xmgBasis) }

// lower walks src once in arena order, re-adding every entry into a fresh
// builder through the target basis's rewrite rules. Structural hashing in
// the destination builder dedups whatever two different source cells
// happen to lower into the same gate.
func lower(src *builder.SubnetBuilder, bs basis) *builder.SubnetBuilder {
	dst := builder.NewBuilder(builder.WithCatalog(src.Catalog()))
	resolved := make(map[model.EntryID]model.Link, src.Len())

	p := src.NewPasser()
	for {
		id, ok := p.Next()
		if !ok {
			break
		}
		resolved[id] = lowerEntry(src, dst, bs, id, resolved)
	}
	return dst
}

func resolve(link model.Link, resolved map[model.EntryID]model.Link) model.Link {
	base := resolved[link.Entry]
	if link.Inverted {
		base = base.Inv()
	}
	return base
}

func lowerEntry(src, dst *builder.SubnetBuilder, bs basis, id model.EntryID, resolved map[model.EntryID]model.Link) model.Link {
	sym := src.Symbol(id)
	switch sym {
	case model.IN:
		return model.NewLink(dst.AddInput())
	case model.OUT:
		l := resolve(src.Links(id)[0], resolved)
		dst.AddOutput(l)
		return model.Link{}
	case model.ZERO:
		return dst.Zero()
	case model.ONE:
		return dst.One()
	}

	links := src.Links(id)
	in := make([]model.Link, len(links))
	for i, l := range links {
		in[i] = resolve(l, resolved)
	}

	switch sym {
	case model.BUF:
		return model.NewLink(dst.AddCell(model.BUF, in[0]))
	case model.NOT:
		return model.NewLink(dst.AddCell(model.NOT, in[0]))
	case model.AND:
		return lowerSymmetric(dst, bs, model.AND, in)
	case model.OR:
		return lowerSymmetric(dst, bs, model.OR, in)
	case model.XOR:
		return lowerSymmetric(dst, bs, model.XOR, in)
	case model.MAJ:
		return lowerMaj(dst, bs, in)
	default:
		// sequential cells and already-hard macros pass through verbatim,
		// their own fanins already resolved above.
		return model.NewLink(dst.AddCell(sym, in...))
	}
}

// lowerSymmetric folds a (possibly n-ary) AND/OR/XOR into the target
// basis: left as-is where the basis keeps the symbol native, otherwise
// reduced pairwise via the basis's two-input substitute.
func lowerSymmetric(dst *builder.SubnetBuilder, bs basis, sym model.CellSymbol, in []model.Link) model.Link {
	native := (sym == model.AND && !bs.hasMAJ) ||
		(sym == model.OR && !bs.hasMAJ) ||
		(sym == model.XOR && bs.hasXOR)
	if native {
		return model.NewLink(dst.AddCell(sym, in...))
	}

	acc := in[0]
	for _, next := range in[1:] {
		acc = lowerPair(dst, bs, sym, acc, next)
	}
	return acc
}

func lowerPair(dst *builder.SubnetBuilder, bs basis, sym model.CellSymbol, a, b model.Link) model.Link {
	// AddTypedCell keeps the MAJ cell; AddCell would fold MAJ(a,b,0/1)
	// straight back into AND/OR.
	majID := dst.Catalog().BuiltinID(model.MAJ)
	switch sym {
	case model.AND:
		return model.NewLink(dst.AddTypedCell(majID, a, b, dst.Zero()))
	case model.OR:
		return model.NewLink(dst.AddTypedCell(majID, a, b, dst.One()))
	default: // XOR, lowered into AND/OR (never reached when bs.hasMAJ && !bs.hasXOR is false)
		return xorViaAndOr(dst, bs, a, b)
	}
}

// xorViaAndOr realizes a xor b as or(and(a,not b), and(not a,b)), then
// lowers that AND/OR pair again through the same basis (so an XOR inside
// an MIG/XMG-bound basis still ends up expressed in MAJ, not AND/OR).
func xorViaAndOr(dst *builder.SubnetBuilder, bs basis, a, b model.Link) model.Link {
	left := lowerSymmetric(dst, bs, model.AND, []model.Link{a, b.Inv()})
	right := lowerSymmetric(dst, bs, model.AND, []model.Link{a.Inv(), b})
	return lowerSymmetric(dst, bs, model.OR, []model.Link{left, right})
}

// lowerMaj keeps MAJ native in MIG/XMG, or expands it into
// or(and(a,b),and(a,c),and(b,c)) — always exactly 3 operands, per MAJ's
// fixed arity — for AIG/XAG.
func lowerMaj(dst *builder.SubnetBuilder, bs basis, in []model.Link) model.Link {
	if bs.hasMAJ {
		return model.NewLink(dst.AddCell(model.MAJ, in...))
	}
	a, b, c := in[0], in[1], in[2]
	ab := lowerSymmetric(dst, bs, model.AND, []model.Link{a, b})
	ac := lowerSymmetric(dst, bs, model.AND, []model.Link{a, c})
	bc := lowerSymmetric(dst, bs, model.AND, []model.Link{b, c})
	return lowerSymmetric(dst, bs, model.OR, []model.Link{ab, ac, bc})
}
