package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// AkersSynth realizes f purely from MAJ cells (plus constants), using the
// classical unate-recursive decomposition behind Akers' majority
// synthesis: at each step it finds a variable x such that f is monotone
// in x (increasing or decreasing), splits via Shannon expansion on x, and
// recombines the two cofactors with a single MAJ gate, which is exact
// whenever the low cofactor implies the high one (or vice versa). A
// function with no remaining unate variable cannot be covered by this
// recursion and Synthesize returns nil, letting the caller fall back to
// another resynthesizer.
type AkersSynth struct{}

func (AkersSynth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	// MAJ synthesis has no native don't-care exploitation here; care
	// points are just frozen to f's own value before decomposition.
	_ = care
	nvars := f.NumVars()
	b := builder.NewBuilder()
	varLinks := make([]model.Link, nvars)
	active := make([]int, nvars)
	for i := 0; i < nvars; i++ {
		varLinks[i] = model.NewLink(b.AddInput())
		active[i] = i
	}

	out, ok := akersRec(b, varLinks, f, active)
	if !ok {
		log.WithField("nvars", nvars).Debug("no unate variable left, Akers synthesis does not apply")
		return nil
	}
	b.AddOutput(out)
	return b.Make(true)
}

func akersRec(b *builder.SubnetBuilder, varLinks []model.Link, f truthtable.TruthTable, active []int) (model.Link, bool) {
	if len(active) == 0 {
		if f.IsZero() {
			return b.Zero(), true
		}
		if f.IsOne() {
			return b.One(), true
		}
		return model.Link{}, false
	}

	nvars := f.NumVars()
	if len(active) == 1 {
		idx := active[0]
		v := truthtable.Var(nvars, idx)
		switch {
		case f.Equal(v):
			return varLinks[idx], true
		case f.Equal(v.Not()):
			return varLinks[idx].Inv(), true
		case f.IsZero():
			return b.Zero(), true
		case f.IsOne():
			return b.One(), true
		}
		return model.Link{}, false
	}

	for pos, idx := range active {
		lowF := cofactorAt(f, idx, false)
		highF := cofactorAt(f, idx, true)

		rest := make([]int, 0, len(active)-1)
		rest = append(rest, active[:pos]...)
		rest = append(rest, active[pos+1:]...)

		if implies(lowF, highF) {
			lowLink, ok1 := akersRec(b, varLinks, lowF, rest)
			highLink, ok2 := akersRec(b, varLinks, highF, rest)
			if ok1 && ok2 {
				// AddTypedCell keeps the MAJ cell; AddCell would fold a
				// MAJ with a constant operand into AND/OR.
				maj := b.AddTypedCell(b.Catalog().BuiltinID(model.MAJ), varLinks[idx], highLink, lowLink)
				return model.NewLink(maj), true
			}
			continue
		}
		if implies(highF, lowF) {
			lowLink, ok1 := akersRec(b, varLinks, lowF, rest)
			highLink, ok2 := akersRec(b, varLinks, highF, rest)
			if ok1 && ok2 {
				maj := b.AddTypedCell(b.Catalog().BuiltinID(model.MAJ), varLinks[idx].Inv(), lowLink, highLink)
				return model.NewLink(maj), true
			}
			continue
		}
	}
	return model.Link{}, false
}

// implies reports whether a(m)=>b(m) for every minterm m, i.e. a's onset
// is a subset of b's.
func implies(a, b truthtable.TruthTable) bool {
	return a.And(b.Not()).IsZero()
}

func cofactorAt(t truthtable.TruthTable, i int, val bool) truthtable.TruthTable {
	nvars := t.NumVars()
	n := 1 << uint(nvars)
	out := truthtable.New(nvars)
	bit := 1 << uint(i)
	for m := 0; m < n; m++ {
		forced := m
		if val {
			forced |= bit
		} else {
			forced &^= bit
		}
		if t.Get(forced) {
			out.Set(m, true)
		}
	}
	return out
}
