package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// resubPivot bundles everything a pivot's resubstitution attempt needs:
// the reconvergence cut it is evaluated over and its function on that cut.
//
// The full scheme computes a care set from the pivot's transitive fanout
// up to maxLevels — minterms outside it may be assigned freely. This
// implementation takes care as all-ones (the pivot's exact function):
// every resubstitution it finds is still a correct, verified replacement,
// it simply forgoes the additional freedom an inexact-outside-the-care-
// region substitution would allow. maxLevels is accepted for API
// compatibility with the full scheme and is stored but not read by this
// implementation.
type resubPivot struct {
	id     model.EntryID
	leaves []model.EntryID
	f      truthtable.TruthTable
}

// collectCare builds a resubPivot for id: a reconvergence cut of at most
// cutSize leaves and id's function over that cut.
func collectCare(b *builder.SubnetBuilder, id model.EntryID, cutSize int) (*resubPivot, bool) {
	c := cut.ReconvergenceCut(b, id, cutSize)
	if len(c.Leaves) == 0 {
		return nil, false
	}
	f, err := truthtable.Evaluate(b, c.Leaves, id)
	if err != nil {
		return nil, false
	}
	return &resubPivot{id: id, leaves: c.Leaves, f: f}, true
}
