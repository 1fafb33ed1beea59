package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/synth"
	"github.com/hqdem/gatesynth/truthtable"
)

// rewriteResynths is the fixed set of resynthesizers a rewrite pass tries
// per cut, in the order they are tried. NPN4Synth only fires on 4-variable
// cuts and the rest degrade to nil on functions outside their scope, so
// trying all of them is cheap relative to cut extraction itself.
var rewriteResynths = []synth.Resynthesizer{
	synth.NPN4Synth{},
	synth.ISOPSynth{},
	synth.FactorSynth{},
	synth.AkersSynth{},
	synth.DeMicheliSynth{},
	synth.ZhegalkinSynth{},
	synth.DSDSynth{},
	synth.BiDecompSynth{},
}

// rewritePass implements cut-based rewriting: for every internal entry, it
// enumerates k-feasible cuts, evaluates each cut's function, asks every
// resynthesizer in rewriteResynths for a replacement, and keeps the
// smallest one a Replacer accepts.
type rewritePass struct {
	k        int
	replacer Replacer
}

// Rewrite builds a Pass that replaces each internal entry's best k-feasible
// cut with the smallest resynthesis a Replacer accepts. zeroCost relaxes
// that Replacer to also accept size-neutral restructurings, trading a
// slower convergence for a wider search the next pass in a script can
// exploit.
func Rewrite(k int, zeroCost bool) Pass {
	return &rewritePass{k: k, replacer: DefaultReplacer{ZeroCost: zeroCost}}
}

func (p *rewritePass) Name() string { return "rewrite" }

func (p *rewritePass) Run(b *builder.SubnetBuilder) error {
	extractor := cut.NewExtractor(b, cut.WithMaxLeaves(p.k))
	it := NewAreaSubnetIterator(b)
	applied := 0

	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		if p.rewriteEntry(b, extractor, id) {
			applied++
		}
	}

	log.WithField("k", p.k).WithField("applied", applied).Info("rewrite pass finished")
	return nil
}

func (p *rewritePass) rewriteEntry(b *builder.SubnetBuilder, extractor *cut.CutExtractor, id model.EntryID) bool {
	var bestSub *model.Subnet
	var bestCut cut.Cut
	bestSize := -1

	for _, c := range extractor.Cuts(id) {
		if len(c.Leaves) < 2 {
			continue // a single-leaf cut is id itself, nothing to rewrite
		}
		f, err := truthtable.Evaluate(b, c.Leaves, id)
		if err != nil {
			continue
		}
		for _, r := range rewriteResynths {
			sub := r.Synthesize(f, nil, p.k)
			if sub == nil {
				continue
			}
			size := subnetSize(sub)
			if bestSize == -1 || size < bestSize {
				bestSize, bestSub, bestCut = size, sub, c
			}
		}
	}

	if bestSub == nil {
		return false
	}

	mapping := builder.IOMap{Inputs: bestCut.Leaves, Outputs: []model.EntryID{id}}
	effect, err := b.EvaluateReplace(bestSub, mapping)
	if err != nil || !p.replacer.Accept(effect) {
		return false
	}
	if _, err := b.Replace(bestSub, mapping); err != nil {
		return false
	}
	return true
}

// subnetSize counts a Subnet's internal (non-IO) cells — the figure
// resynthesis candidates are ranked on before a Replacer ever sees them.
func subnetSize(sub *model.Subnet) int {
	n := 0
	for i := range sub.Entries {
		sym := sub.Symbol(model.EntryID(i))
		if sym != model.IN && sym != model.OUT {
			n++
		}
	}
	return n
}
