package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// ZhegalkinSynth realizes f as a fixed-polarity Reed-Muller form: an XOR
// of AND monomials (its Zhegalkin polynomial), trying every input
// polarity in turn for the cheapest (fewest-monomial) encoding when f
// has at most 6 variables, and only the all-positive polarity above
// that. care is honored by filling don't-care minterms with 0 before the
// transform; this is not a don't-care-aware ESOP minimizer.
type ZhegalkinSynth struct{}

func (ZhegalkinSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	nvars := f.NumVars()
	filled := fillDontCares(f, care)

	bestPolarity := 0
	var bestCoeffs []bool
	bestCount := -1

	maxPolarity := 1
	if nvars <= 6 {
		maxPolarity = 1 << uint(nvars)
	}
	for pol := 0; pol < maxPolarity; pol++ {
		shifted := shiftPolarity(filled, pol)
		coeffs := zhegalkinTransform(shifted)
		count := 0
		for _, c := range coeffs {
			if c {
				count++
			}
		}
		if bestCount == -1 || count < bestCount {
			bestCount = count
			bestCoeffs = coeffs
			bestPolarity = pol
		}
	}

	b := builder.NewBuilder()
	vars := make([]model.Link, nvars)
	for i := 0; i < nvars; i++ {
		lit := model.NewLink(b.AddInput())
		if bestPolarity&(1<<uint(i)) != 0 {
			lit = lit.Inv()
		}
		vars[i] = lit
	}

	var terms []model.Link
	n := 1 << uint(nvars)
	for m := 0; m < n; m++ {
		if !bestCoeffs[m] {
			continue
		}
		var lits []model.Link
		for i := 0; i < nvars; i++ {
			if m&(1<<uint(i)) != 0 {
				lits = append(lits, vars[i])
			}
		}
		switch len(lits) {
		case 0:
			terms = append(terms, b.One())
		case 1:
			terms = append(terms, lits[0])
		default:
			terms = append(terms, model.NewLink(b.AddCellTree(model.AND, lits, maxArity)))
		}
	}

	if len(terms) == 0 {
		b.AddOutput(b.Zero())
		return b.Make(true)
	}
	if len(terms) == 1 {
		b.AddOutput(terms[0])
		return b.Make(true)
	}
	root := b.AddCellTree(model.XOR, terms, maxArity)
	b.AddOutput(model.NewLink(root))
	return b.Make(true)
}

func fillDontCares(f, care truthtable.TruthTable) []bool {
	nvars := f.NumVars()
	n := 1 << uint(nvars)
	out := make([]bool, n)
	for m := 0; m < n; m++ {
		if care == nil || care.Get(m) {
			out[m] = f.Get(m)
		} else {
			out[m] = false
		}
	}
	return out
}

func shiftPolarity(bits []bool, pol int) []bool {
	n := len(bits)
	out := make([]bool, n)
	for m := 0; m < n; m++ {
		out[m] = bits[m^pol]
	}
	return out
}

// zhegalkinTransform computes the algebraic normal form coefficients of a
// Boolean function given as a minterm truth vector, via the standard
// in-place Mobius transform over the Boolean lattice.
func zhegalkinTransform(bits []bool) []bool {
	n := len(bits)
	coeffs := append([]bool(nil), bits...)
	for bit := 1; bit < n; bit <<= 1 {
		for m := 0; m < n; m++ {
			if m&bit != 0 {
				coeffs[m] = coeffs[m] != coeffs[m&^bit]
			}
		}
	}
	return coeffs
}
