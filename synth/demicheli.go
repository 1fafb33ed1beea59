package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// DefaultMaxNodes bounds DeMicheliSynth's node count when the caller does
// not set one explicitly.
const DefaultMaxNodes = 2000

// DeMicheliSynth realizes f entirely from MAJ cells by taking its ISOP
// cover and mechanically substituting the two constant-collapsed MAJ
// identities MAJ(x,y,0)=AND(x,y) and MAJ(x,y,1)=OR(x,y) for the cover's
// AND/OR tree, pairwise-folding each level (De Micheli-style greedy
// top-down composition rather than Akers' unate recursion). MaxNodes
// bounds the node count the cover is allowed to cost; exceeding it aborts
// and Synthesize returns nil so the caller can fall back to a cheaper
// resynthesizer.
type DeMicheliSynth struct {
	MaxNodes int
}

func (d DeMicheliSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	_ = maxArity
	maxNodes := d.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

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

	nodes := 0
	budgetOK := func() bool {
		nodes++
		return nodes <= maxNodes
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
		term, ok := majFold(b, lits, b.Zero(), budgetOK)
		if !ok {
			log.WithField("maxNodes", maxNodes).Debug("De Micheli synthesis exceeded its node budget")
			return nil
		}
		productTerms = append(productTerms, term)
	}

	root, ok := majFold(b, productTerms, b.One(), budgetOK)
	if !ok {
		log.WithField("maxNodes", maxNodes).Debug("De Micheli synthesis exceeded its node budget")
		return nil
	}
	b.AddOutput(root)
	return b.Make(true)
}

// majFold pairwise-folds links into a single link via MAJ(a,b,identity)
// gates, where identity is the builder's ZERO link to emulate AND or its
// ONE link to emulate OR. budgetOK is called once per gate and returning
// false aborts the fold.
func majFold(b *builder.SubnetBuilder, links []model.Link, identity model.Link, budgetOK func() bool) (model.Link, bool) {
	if len(links) == 0 {
		return identity, true
	}
	for len(links) > 1 {
		next := make([]model.Link, 0, (len(links)+1)/2)
		for i := 0; i+1 < len(links); i += 2 {
			if !budgetOK() {
				return model.Link{}, false
			}
			// AddTypedCell keeps the MAJ cell; AddCell would fold
			// MAJ(a,b,0/1) into AND/OR.
			maj := b.AddTypedCell(b.Catalog().BuiltinID(model.MAJ), links[i], links[i+1], identity)
			next = append(next, model.NewLink(maj))
		}
		if len(links)%2 == 1 {
			next = append(next, links[len(links)-1])
		}
		links = next
	}
	return links[0], true
}
