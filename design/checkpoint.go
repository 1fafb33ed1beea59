package design

import (
	"fmt"

	"github.com/hqdem/gatesynth/builder"
)

// Snapshot is a deep, independent copy of every subnet builder a Design
// held at the moment a save_point was taken, plus the arc graph that
// connected them at that time. Restoring a Snapshot never shares state
// with the live Design or any other checkpoint: every contained builder
// is cloned again on the way out, so GotoPoint may be called on the same
// tag more than once.
type Snapshot struct {
	subnets map[string]*builder.SubnetBuilder
	graph   *DesignBuilder
}

func snapshotOf(d *Design) Snapshot {
	subnets := make(map[string]*builder.SubnetBuilder, len(d.Subnets))
	for name, b := range d.Subnets {
		subnets[name] = b.Clone()
	}
	return Snapshot{subnets: subnets, graph: d.graph.clone()}
}

// SavePoint records the Design's current state under tag, overwriting
// any earlier checkpoint recorded under the same tag.
func (d *Design) SavePoint(tag string) {
	d.checkpoints[tag] = snapshotOf(d)
	log.WithField("tag", tag).Info("checkpoint saved")
}

// GotoPoint restores the Design's subnets and arc graph to the state
// captured by SavePoint(tag). It returns an error if tag was never
// saved; the Design is left untouched in that case.
func (d *Design) GotoPoint(tag string) error {
	cp, ok := d.checkpoints[tag]
	if !ok {
		return fmt.Errorf("design: unknown checkpoint %q", tag)
	}
	restored := make(map[string]*builder.SubnetBuilder, len(cp.subnets))
	for name, b := range cp.subnets {
		restored[name] = b.Clone()
	}
	d.Subnets = restored
	d.graph = cp.graph.clone()
	log.WithField("tag", tag).Info("checkpoint restored")
	return nil
}

// ListPoints returns every checkpoint tag currently recorded, in no
// particular order.
func (d *Design) ListPoints() []string {
	out := make([]string, 0, len(d.checkpoints))
	for tag := range d.checkpoints {
		out = append(out, tag)
	}
	return out
}
