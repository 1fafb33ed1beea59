package shell

import (
	"encoding/xml"
	"io"
	"sort"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/design"
	"github.com/pkg/errors"
)

// FrontendReader parses an external file format into an existing
// Design, adding or connecting subnets as it goes. A real read_firrtl
// or read_liberty implementation is an external collaborator; only the
// interface seam lives here.
type FrontendReader interface {
	Read(r io.Reader, into *design.Design) error
}

// FrontendWriter serializes a Design's structure to an external
// representation.
type FrontendWriter interface {
	Write(w io.Writer, from *design.Design) error
}

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlGraph struct {
	ID    string        `xml:"id,attr"`
	Nodes []graphmlNode `xml:"node"`
	Edges []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID string `xml:"id,attr"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// GraphMLFrontend is the minimal in-tree GraphML reader/writer kept as
// the one non-external frontend: one <node> per subnet name and one
// <edge> per design.Arc, with a "kind" data entry carrying
// the ArcKind. It round-trips a design's topology, not cell-level
// content — reading a library-backed netlist out of GraphML is outside
// this seam's scope, same as write_verilog/write_dot proper.
type GraphMLFrontend struct{}

// Read parses r as GraphML and adds every node/edge it finds into into,
// registering subnets it has not seen before as empty builders.
func (GraphMLFrontend) Read(r io.Reader, into *design.Design) error {
	var doc graphmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return errors.Wrap(err, "shell: parsing graphml")
	}
	for _, n := range doc.Graph.Nodes {
		if _, ok := into.Subnets[n.ID]; !ok {
			into.AddSubnet(n.ID, builder.NewBuilder())
		}
	}
	for _, e := range doc.Graph.Edges {
		kind := design.DataArc
		for _, d := range e.Data {
			if d.Key == "kind" {
				kind = parseArcKind(d.Value)
			}
		}
		into.Connect(e.Source, e.Target, kind)
	}
	return nil
}

// Write renders from's subnet names and arcs as GraphML.
func (GraphMLFrontend) Write(w io.Writer, from *design.Design) error {
	doc := graphmlDoc{Graph: graphmlGraph{ID: from.Name}}

	names := make([]string, 0, len(from.Subnets))
	for name := range from.Subnets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{ID: name})
	}

	for _, a := range from.Arcs() {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: a.From,
			Target: a.To,
			Data:   []graphmlData{{Key: "kind", Value: a.Kind.String()}},
		})
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "shell: writing graphml")
	}
	return nil
}

func parseArcKind(s string) design.ArcKind {
	switch s {
	case "clock":
		return design.ClockArc
	case "reset":
		return design.ResetArc
	default:
		return design.DataArc
	}
}

// DotFrontend is a tiny in-tree DOT writer for write_dot, covering the
// same topology-only scope GraphMLFrontend does: one node per subnet,
// one edge per Arc labeled with its kind.
type DotFrontend struct{}

// Write renders from as a Graphviz DOT digraph.
func (DotFrontend) Write(w io.Writer, from *design.Design) error {
	if _, err := io.WriteString(w, "digraph "+dotQuote(from.Name)+" {\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(from.Subnets))
	for name := range from.Subnets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := io.WriteString(w, "  "+dotQuote(name)+";\n"); err != nil {
			return err
		}
	}
	arcs := from.Arcs()
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}
		return arcs[i].To < arcs[j].To
	})
	for _, a := range arcs {
		line := "  " + dotQuote(a.From) + " -> " + dotQuote(a.To) + " [label=" + dotQuote(a.Kind.String()) + "];\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func dotQuote(s string) string {
	return "\"" + s + "\""
}
