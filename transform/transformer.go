package transform

import "github.com/hqdem/gatesynth/builder"

// Transformer drives a sequence of passes over a single builder, the thin
// orchestrator a shell command reaches for instead of calling Pass.Run
// directly so it can log a consistent summary regardless of which script
// or ad-hoc pass list is in play.
type Transformer struct {
	b *builder.SubnetBuilder
}

// NewTransformer binds a Transformer to b. Every RunPass/RunScript call
// mutates b in place.
func NewTransformer(b *builder.SubnetBuilder) *Transformer {
	return &Transformer{b: b}
}

// RunPass runs a single pass over the bound builder.
func (t *Transformer) RunPass(p Pass) error {
	log.WithField("pass", p.Name()).Debug("running pass")
	return p.Run(t.b)
}

// RunScript resolves name via Script and runs every pass in order,
// stopping at the first error.
func (t *Transformer) RunScript(name string) error {
	passes, err := Script(name)
	if err != nil {
		return err
	}
	log.WithField("script", name).Info("running script")
	for _, p := range passes {
		if err := t.RunPass(p); err != nil {
			return err
		}
	}
	return nil
}

// Cost reports the bound builder's current size/depth cost, the figure a
// shell stat command surfaces before and after a logopt run.
func (t *Transformer) Cost() Cost {
	return measureCost(t.b)
}
