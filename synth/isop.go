package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// ISOPSynth realizes f as a sum of products: truthtable.ISOP extracts an
// irredundant cover, each cube becomes an AND tree over its literals (via
// AddCellTree, bounded to maxArity), and the cubes are OR-reduced the
// same way. This is always exact (care is honored, never approximated),
// so Synthesize never returns nil.
type ISOPSynth struct{}

func (ISOPSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
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

	var productTerms []model.Link
	for _, cube := range cubes {
		var lits []model.Link
		for i, lit := range cube.Lits {
			switch lit {
			case 0:
				lits = append(lits, vars[i].Inv())
			case 1:
				lits = append(lits, vars[i])
			}
		}
		if len(lits) == 0 {
			productTerms = append(productTerms, b.One())
			continue
		}
		if len(lits) == 1 {
			productTerms = append(productTerms, lits[0])
			continue
		}
		productTerms = append(productTerms, model.NewLink(b.AddCellTree(model.AND, lits, maxArity)))
	}

	var root model.EntryID
	if len(productTerms) == 1 {
		b.AddOutput(productTerms[0])
		return b.Make(true)
	}
	root = b.AddCellTree(model.OR, productTerms, maxArity)
	b.AddOutput(model.NewLink(root))
	return b.Make(true)
}
