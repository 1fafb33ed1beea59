package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// tryConstant checks whether p's function is constant under the (here,
// full) care set and, if so, returns a trivial zero-input subnet whose
// sole output drives straight from ZERO or ONE.
func tryConstant(p *resubPivot) *model.Subnet {
	if !p.f.IsZero() && !p.f.IsOne() {
		return nil
	}
	b := builder.NewBuilder()
	if p.f.IsZero() {
		b.AddOutput(b.Zero())
	} else {
		b.AddOutput(b.One())
	}
	return b.Make(true)
}
