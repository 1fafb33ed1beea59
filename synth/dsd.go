package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// DSDSynth looks for a disjoint-support decomposition f = g(h(A), B) over
// some bound set A disjoint from the free set B, in the style of
// Ashenhurst-Curtis: A is a valid bound set exactly when the cofactors of
// f over every assignment to A fall into at most two distinct functions
// of B, at which point h selects the class and g recombines it with the
// rest. The search here is restricted to bound sets of size 1 or 2 (a
// deliberate trim of the classical unbounded search, which also merges
// compatible classes under don't cares); once no decomposition is found,
// or the remaining support is already small, the residual function is
// handed to ISOPSynth's cube construction inline rather than recursing
// further.
type DSDSynth struct{}

func (DSDSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	nvars := f.NumVars()
	b := builder.NewBuilder()
	varLinks := make([]model.Link, nvars)
	active := make([]int, nvars)
	for i := 0; i < nvars; i++ {
		varLinks[i] = model.NewLink(b.AddInput())
		active[i] = i
	}
	out := dsdRec(b, varLinks, f, active, maxArity)
	b.AddOutput(out)
	return b.Make(true)
}

func dsdRec(b *builder.SubnetBuilder, varLinks []model.Link, f truthtable.TruthTable, active []int, maxArity int) model.Link {
	if len(active) <= 6 {
		return isopInline(b, varLinks, f, maxArity)
	}

	for size := 1; size <= 2 && size < len(active); size++ {
		for _, combo := range chooseIndices(len(active), size) {
			boundSet := make([]int, size)
			for i, pos := range combo {
				boundSet[i] = active[pos]
			}
			freeSet := complementIndices(active, combo)

			class0, class1, selector, ok := classifyBoundSet(f, boundSet)
			if !ok {
				continue
			}

			selVarLinks := make([]model.Link, len(boundSet))
			for i, idx := range boundSet {
				selVarLinks[i] = varLinks[idx]
			}
			selLink := isopInline(b, selVarLinks, selector, maxArity)
			y0 := dsdRec(b, varLinks, class0, freeSet, maxArity)
			y1 := dsdRec(b, varLinks, class1, freeSet, maxArity)

			t1 := b.AddCell(model.AND, selLink, y1)
			t0 := b.AddCell(model.AND, selLink.Inv(), y0)
			out := b.AddCell(model.OR, model.NewLink(t1), model.NewLink(t0))
			return model.NewLink(out)
		}
	}
	return isopInline(b, varLinks, f, maxArity)
}

// classifyBoundSet reports whether f's cofactors over every assignment to
// boundSet fall into at most two distinct functions, returning those
// classes (class1 may equal class0 if only one is reached) and the
// selector function over boundSet's own variables that picks between
// them.
func classifyBoundSet(f truthtable.TruthTable, boundSet []int) (class0, class1, selector truthtable.TruthTable, ok bool) {
	n := 1 << uint(len(boundSet))
	selector = truthtable.New(len(boundSet))

	var classes []truthtable.TruthTable
	assign := make([]int8, len(boundSet))
	for a := 0; a < n; a++ {
		cof := f
		for i, idx := range boundSet {
			bit := a&(1<<uint(i)) != 0
			cof = cofactorAt(cof, idx, bit)
			assign[i] = 0
			if bit {
				assign[i] = 1
			}
		}

		classIdx := -1
		for ci, c := range classes {
			if c.Equal(cof) {
				classIdx = ci
				break
			}
		}
		if classIdx == -1 {
			if len(classes) >= 2 {
				return nil, nil, nil, false
			}
			classes = append(classes, cof)
			classIdx = len(classes) - 1
		}
		if classIdx == 1 {
			selector.Set(a, true)
		}
	}
	if len(classes) == 0 {
		return nil, nil, nil, false
	}
	class0 = classes[0]
	if len(classes) == 2 {
		class1 = classes[1]
	} else {
		class1 = classes[0]
	}
	return class0, class1, selector, true
}

// isopInline realizes f over the active variables directly as an AND/OR
// cube tree, without allocating a fresh builder (letting DSD splice
// prime nodes into a shared arena).
func isopInline(b *builder.SubnetBuilder, varLinks []model.Link, f truthtable.TruthTable, maxArity int) model.Link {
	cubes := truthtable.ISOP(f, nil)
	if len(cubes) == 0 {
		return b.Zero()
	}
	var productTerms []model.Link
	for _, cube := range cubes {
		var lits []model.Link
		for i, lit := range cube.Lits {
			switch lit {
			case 0:
				lits = append(lits, varLinks[i].Inv())
			case 1:
				lits = append(lits, varLinks[i])
			}
		}
		switch len(lits) {
		case 0:
			productTerms = append(productTerms, b.One())
		case 1:
			productTerms = append(productTerms, lits[0])
		default:
			productTerms = append(productTerms, model.NewLink(b.AddCellTree(model.AND, lits, maxArity)))
		}
	}
	if len(productTerms) == 1 {
		return productTerms[0]
	}
	return model.NewLink(b.AddCellTree(model.OR, productTerms, maxArity))
}

// chooseIndices enumerates every size-length combination of indices in
// [0,n), in ascending order.
func chooseIndices(n, size int) [][]int {
	var out [][]int
	combo := make([]int, size)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == size {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// complementIndices returns active with the positions named in combo
// removed.
func complementIndices(active []int, combo []int) []int {
	skip := make(map[int]bool, len(combo))
	for _, c := range combo {
		skip[c] = true
	}
	out := make([]int, 0, len(active)-len(combo))
	for pos, v := range active {
		if !skip[pos] {
			out = append(out, v)
		}
	}
	return out
}
