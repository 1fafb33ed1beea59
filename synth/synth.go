package synth

import (
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "synth")

// Resynthesizer builds a standalone Subnet computing f (subject to don't
// cares in care, which may be nil), using cells of at most maxArity
// inputs where the underlying construction is arity-bounded. Not every
// resynthesizer can realize every function within budget; those return
// nil rather than panicking, letting callers fall back to another
// algorithm.
type Resynthesizer interface {
	Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet
}
