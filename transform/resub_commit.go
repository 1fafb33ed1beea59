package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
)

// commitResub applies cand against pivot p if doing so actually shrinks
// the network: a potential MFFC shrinkage of a single cell isn't worth the
// rebuild (the spliced replacement itself costs at least one cell), and
// the Replacer still has the final say on the measured cost delta.
func commitResub(b *builder.SubnetBuilder, p *resubPivot, cand *resubCandidate, replacer Replacer) bool {
	if cand == nil {
		return false
	}
	if mffc := cut.MFFC(b, p.id, p.leaves); len(mffc) <= 1 {
		return false
	}

	mapping := builder.IOMap{Inputs: cand.inputs, Outputs: []model.EntryID{p.id}}
	effect, err := b.EvaluateReplace(cand.sub, mapping)
	if err != nil || !replacer.Accept(effect) {
		return false
	}
	_, err = b.Replace(cand.sub, mapping)
	return err == nil
}
