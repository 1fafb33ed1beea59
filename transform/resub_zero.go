package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// resubCandidate is a proposed replacement for a pivot: the subnet to
// splice in and the existing builder entries its inputs bind to, in
// order. commitResub turns this into an IOMap against the pivot.
type resubCandidate struct {
	sub    *model.Subnet
	inputs []model.EntryID
}

// tryZeroResub looks for a single divisor whose function already equals
// p's exactly — p is redundant, and the replacement is a cell-free
// subnet whose output link is that divisor directly.
func tryZeroResub(p *resubPivot, divisors []divisor) *resubCandidate {
	for _, d := range divisors {
		if d.tt.Equal(p.f) {
			return &resubCandidate{sub: passthroughSubnet(false), inputs: []model.EntryID{d.id}}
		}
	}
	return nil
}

// passthroughSubnet builds a single-input subnet whose output is that
// input, inverted when inv is set.
func passthroughSubnet(inv bool) *model.Subnet {
	b := builder.NewBuilder()
	in := model.NewLink(b.AddInput())
	if inv {
		in = in.Inv()
	}
	b.AddOutput(in)
	return b.Make(true)
}
