package design

import (
	"fmt"
	"io"
	"sort"
)

// WriteDataflow writes a line-oriented, human-readable dump of a
// Design's subnet graph to w: one header line naming the design, one
// line per subnet giving its port and entry counts, and one line per
// arc naming its endpoints and kind. Output is sorted by name so two
// calls against an unchanged design always produce byte-identical
// text, which keeps write_dataflow's output diff-friendly.
func WriteDataflow(w io.Writer, d *Design) error {
	if _, err := fmt.Fprintf(w, "design %s (%s)\n", d.Name, d.ID); err != nil {
		return err
	}

	names := make([]string, 0, len(d.Subnets))
	for name := range d.Subnets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b := d.Subnets[name]
		if _, err := fmt.Fprintf(w, "  subnet %s: %d in, %d out, %d entries\n", name, b.NumIn(), b.NumOut(), b.Len()); err != nil {
			return err
		}
	}

	arcs := d.graph.Arcs()
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}
		if arcs[i].To != arcs[j].To {
			return arcs[i].To < arcs[j].To
		}
		return arcs[i].Kind < arcs[j].Kind
	})
	for _, a := range arcs {
		if _, err := fmt.Fprintf(w, "  %s -> %s [%s]\n", a.From, a.To, a.Kind); err != nil {
			return err
		}
	}
	return nil
}
