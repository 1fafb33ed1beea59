package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// BiDecompSynth searches for a bipartition of f's support into disjoint
// sets A and B and a 2-input operator OP in {AND, OR, XOR} such that
// f(A,B) = g(A) OP h(B) exactly. Candidate g/h are derived algebraically
// for each operator (existential/universal quantification for AND/OR,
// single-reference-point construction for XOR) and then checked against
// the whole truth table; a candidate that fails verification is simply
// discarded; a match lets A and B recurse independently. Search is
// bounded to bound sets A of size 1 to 3, a trim of the exponential full
// bipartition search.
type BiDecompSynth struct{}

func (BiDecompSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	nvars := f.NumVars()
	b := builder.NewBuilder()
	varLinks := make([]model.Link, nvars)
	active := make([]int, nvars)
	for i := 0; i < nvars; i++ {
		varLinks[i] = model.NewLink(b.AddInput())
		active[i] = i
	}
	out := bidecompRec(b, varLinks, f, active, maxArity)
	b.AddOutput(out)
	return b.Make(true)
}

func bidecompRec(b *builder.SubnetBuilder, varLinks []model.Link, f truthtable.TruthTable, active []int, maxArity int) model.Link {
	if len(active) <= 6 {
		return isopInline(b, varLinks, f, maxArity)
	}

	maxBoundSize := 3
	for size := 1; size <= maxBoundSize && size < len(active); size++ {
		for _, combo := range chooseIndices(len(active), size) {
			boundSet := make([]int, size)
			for i, pos := range combo {
				boundSet[i] = active[pos]
			}
			freeSet := complementIndices(active, combo)

			for _, op := range []model.CellSymbol{model.AND, model.OR, model.XOR} {
				g, h, ok := tryBiDecompose(f, boundSet, freeSet, op)
				if !ok {
					continue
				}
				gLink := bidecompRec(b, varLinks, g, boundSet, maxArity)
				hLink := bidecompRec(b, varLinks, h, freeSet, maxArity)
				out := b.AddCell(op, gLink, hLink)
				return model.NewLink(out)
			}
		}
	}
	return isopInline(b, varLinks, f, maxArity)
}

// tryBiDecompose derives a candidate (g over boundSet, h over freeSet)
// for the given operator and verifies it reproduces f exactly.
func tryBiDecompose(f truthtable.TruthTable, boundSet, freeSet []int, op model.CellSymbol) (g, h truthtable.TruthTable, ok bool) {
	switch op {
	case model.AND:
		g = quantify(f, freeSet, true)
		h = quantify(f, boundSet, true)
		return g, h, f.Equal(g.And(h))
	case model.OR:
		notF := f.Not()
		notG := quantify(notF, freeSet, true)
		notH := quantify(notF, boundSet, true)
		g, h = notG.Not(), notH.Not()
		return g, h, f.Equal(g.Or(h))
	case model.XOR:
		allZero := func(idxs []int) truthtable.TruthTable {
			t := f
			for _, idx := range idxs {
				t = cofactorAt(t, idx, false)
			}
			return t
		}
		fA0 := allZero(freeSet)
		fB0 := allZero(boundSet)
		f00 := allZero(append(append([]int(nil), boundSet...), freeSet...))

		g = fA0
		h = fB0.Xor(f00)
		return g, h, f.Equal(g.Xor(h))
	}
	return nil, nil, false
}

// quantify reduces f by existentially (exists=true) or universally
// quantifying out every variable in idxs, i.e. ORing or ANDing together
// the two cofactors for each quantified variable in turn.
func quantify(f truthtable.TruthTable, idxs []int, exists bool) truthtable.TruthTable {
	out := f
	for _, idx := range idxs {
		c0 := cofactorAt(out, idx, false)
		c1 := cofactorAt(out, idx, true)
		if exists {
			out = c0.Or(c1)
		} else {
			out = c0.And(c1)
		}
	}
	return out
}
