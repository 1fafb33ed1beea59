package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// FactorSynth realizes f via algebraic quick factoring: its ISOP cover is
// recursively divided by whichever literal appears in the most cubes,
// producing a nested AND/OR form rather than the flat two-level SOP tree
// ISOPSynth builds. This is the classical single-cube-divisor "quick
// factor" heuristic (Brayton/McMullen), not full kernel/co-kernel
// extraction: it finds no multi-cube divisors, trading some literal
// count for a much cheaper search. It exists for area-oriented passes
// that prefer fewer total literals over ISOPSynth's flat structure.
type FactorSynth struct{}

type flit struct {
	idx int
	pos bool
}

func (FactorSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	_ = maxArity
	nvars := f.NumVars()
	b := builder.NewBuilder()
	vars := make([]model.Link, nvars)
	for i := 0; i < nvars; i++ {
		vars[i] = model.NewLink(b.AddInput())
	}

	cubes := truthtable.ISOP(f, care)
	if len(cubes) == 0 {
		b.AddOutput(b.Zero())
		return b.Make(true)
	}

	lits := make([][]flit, len(cubes))
	for i, cube := range cubes {
		for idx, lit := range cube.Lits {
			switch lit {
			case 0:
				lits[i] = append(lits[i], flit{idx: idx, pos: false})
			case 1:
				lits[i] = append(lits[i], flit{idx: idx, pos: true})
			}
		}
	}

	out := quickFactor(b, vars, lits)
	b.AddOutput(out)
	return b.Make(true)
}

func quickFactor(b *builder.SubnetBuilder, vars []model.Link, cubes [][]flit) model.Link {
	if len(cubes) == 0 {
		return b.Zero()
	}
	if len(cubes) == 1 {
		return andCube(b, vars, cubes[0])
	}

	counts := make(map[flit]int)
	for _, cube := range cubes {
		for _, l := range cube {
			counts[l]++
		}
	}
	var best flit
	bestCount := 0
	for l, c := range counts {
		if c > bestCount || (c == bestCount && (l.idx < best.idx || (l.idx == best.idx && !l.pos && best.pos))) {
			best = l
			bestCount = c
		}
	}

	var withLit, withoutLit [][]flit
	for _, cube := range cubes {
		found := false
		remainder := make([]flit, 0, len(cube))
		for _, l := range cube {
			if l == best {
				found = true
				continue
			}
			remainder = append(remainder, l)
		}
		if found {
			withLit = append(withLit, remainder)
		} else {
			withoutLit = append(withoutLit, cube)
		}
	}

	litLink := vars[best.idx]
	if !best.pos {
		litLink = litLink.Inv()
	}

	quotient := quickFactor(b, vars, withLit)
	and := b.AddCell(model.AND, litLink, quotient)
	quotientLink := model.NewLink(and)

	if len(withoutLit) == 0 {
		return quotientLink
	}
	remainderLink := quickFactor(b, vars, withoutLit)
	or := b.AddCell(model.OR, quotientLink, remainderLink)
	return model.NewLink(or)
}

func andCube(b *builder.SubnetBuilder, vars []model.Link, cube []flit) model.Link {
	if len(cube) == 0 {
		return b.One()
	}
	acc := vars[cube[0].idx]
	if !cube[0].pos {
		acc = acc.Inv()
	}
	for _, l := range cube[1:] {
		lit := vars[l.idx]
		if !l.pos {
			lit = lit.Inv()
		}
		id := b.AddCell(model.AND, acc, lit)
		acc = model.NewLink(id)
	}
	return acc
}
