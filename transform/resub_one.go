package transform

import "github.com/hqdem/gatesynth/model"

// tryOneResub looks for a single divisor whose complement equals p's
// function — p is redundant up to polarity, and the replacement pushes
// the inversion into the spliced subnet's inverted output link rather
// than emitting a separate NOT.
func tryOneResub(p *resubPivot, divisors []divisor) *resubCandidate {
	for _, d := range divisors {
		if d.tt.Not().Equal(p.f) {
			return &resubCandidate{sub: passthroughSubnet(true), inputs: []model.EntryID{d.id}}
		}
	}
	return nil
}
