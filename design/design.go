package design

import (
	"github.com/google/uuid"
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/techmap"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "design")

// Design is a named, hierarchical collection of subnet builders
// gathered under one identifier for the lifetime of a shell session:
// one builder per named subnet, a graph recording how they connect,
// an optional technology Library once loaded, and a set of named
// checkpoints a session can roll back to.
type Design struct {
	ID      uuid.UUID
	Name    string
	Subnets map[string]*builder.SubnetBuilder
	Library *techmap.Library

	graph       *DesignBuilder
	checkpoints map[string]Snapshot
}

// New creates an empty Design with a fresh identifier.
func New(name string) *Design {
	return &Design{
		ID:          uuid.New(),
		Name:        name,
		Subnets:     make(map[string]*builder.SubnetBuilder),
		graph:       newDesignBuilder(),
		checkpoints: make(map[string]Snapshot),
	}
}

// AddSubnet registers b under name, replacing any subnet already
// registered there.
func (d *Design) AddSubnet(name string, b *builder.SubnetBuilder) {
	d.Subnets[name] = b
	d.graph.AddVertex(name)
}

// Connect records that the subnet named from drives the subnet named to
// over a bundle of the given kind.
func (d *Design) Connect(from, to string, kind ArcKind) {
	d.graph.AddArc(Arc{From: from, To: to, Kind: kind})
}

// Arcs returns every recorded inter-subnet connection.
func (d *Design) Arcs() []Arc {
	return d.graph.Arcs()
}

// Stat summarizes a Design for the shell's stat_design verb.
type Stat struct {
	Name         string
	NumSubnets   int
	NumArcs      int
	HasLibrary   bool
	NumCellTypes int
	Checkpoints  []string
}

// Stat computes the current summary for the design.
func (d *Design) Stat() Stat {
	numCells := 0
	if d.Library != nil {
		numCells = len(d.Library.Cells)
	}
	return Stat{
		Name:         d.Name,
		NumSubnets:   len(d.Subnets),
		NumArcs:      len(d.graph.Arcs()),
		HasLibrary:   d.Library != nil,
		NumCellTypes: numCells,
		Checkpoints:  d.ListPoints(),
	}
}
