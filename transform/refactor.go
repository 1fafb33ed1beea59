package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/synth"
	"github.com/hqdem/gatesynth/truthtable"
)

// RefactorVariant selects which Replacer a refactor pass judges candidates
// with. Area and Power currently share a Replacer because builder.Effect
// only reports a Size/Depth delta — once techmap populates per-entry area
// and power weights, Power gets its own Effect dimension to judge on.
type RefactorVariant int

const (
	RefactorDefault RefactorVariant = iota
	RefactorZero
	RefactorArea
	RefactorDepth
	RefactorPower
)

// defaultRefactorWindow is the reconvergence-cut size refactor uses to
// pick its rewriting region — wider than a rewrite cut, since factoring
// wants enough of the cone to find a shared sub-expression.
const defaultRefactorWindow = 12

// refactorResynths tries algebraic factoring first (the whole point of
// refactor over rewrite), falling back to a flat two-level cover so a
// region that does not factor usefully is still re-expressed in minimal
// SOP form rather than left as whatever tree the arena happened to build.
var refactorResynths = []synth.Resynthesizer{
	synth.FactorSynth{},
	synth.ISOPSynth{},
}

type refactorPass struct {
	window   int
	replacer Replacer
}

// Refactor builds a Pass that re-expresses each internal entry's
// reconvergence-bounded cone through algebraic factoring, committing only
// what variant's Replacer accepts.
func Refactor(variant RefactorVariant) Pass {
	return &refactorPass{window: defaultRefactorWindow, replacer: refactorReplacerFor(variant)}
}

func refactorReplacerFor(variant RefactorVariant) Replacer {
	switch variant {
	case RefactorZero:
		return DefaultReplacer{ZeroCost: true}
	case RefactorArea, RefactorPower:
		return AreaReplacer{ZeroCost: false}
	case RefactorDepth:
		return DepthReplacer{ZeroCost: false}
	default:
		return DefaultReplacer{ZeroCost: false}
	}
}

func (p *refactorPass) Name() string { return "refactor" }

func (p *refactorPass) Run(b *builder.SubnetBuilder) error {
	it := NewAreaSubnetIterator(b)
	applied := 0

	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		if p.refactorEntry(b, id) {
			applied++
		}
	}

	log.WithField("window", p.window).WithField("applied", applied).Info("refactor pass finished")
	return nil
}

func (p *refactorPass) refactorEntry(b *builder.SubnetBuilder, id model.EntryID) bool {
	c := cut.ReconvergenceCut(b, id, p.window)
	if len(c.Leaves) < 2 {
		return false
	}

	f, err := truthtable.Evaluate(b, c.Leaves, id)
	if err != nil {
		return false
	}

	var bestSub *model.Subnet
	bestSize := -1
	for _, r := range refactorResynths {
		sub := r.Synthesize(f, nil, len(c.Leaves))
		if sub == nil {
			continue
		}
		if size := subnetSize(sub); bestSize == -1 || size < bestSize {
			bestSize, bestSub = size, sub
		}
	}
	if bestSub == nil {
		return false
	}

	mapping := builder.IOMap{Inputs: c.Leaves, Outputs: []model.EntryID{id}}
	effect, err := b.EvaluateReplace(bestSub, mapping)
	if err != nil || !p.replacer.Accept(effect) {
		return false
	}
	_, err = b.Replace(bestSub, mapping)
	return err == nil
}
