package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "transform")

// CostDimension names one axis of Cost a Criterion can bound or a
// Replacer can optimize against.
type CostDimension int

const (
	Size CostDimension = iota
	Depth
	Area
	Delay
	Power
)

func (d CostDimension) String() string {
	switch d {
	case Size:
		return "size"
	case Depth:
		return "depth"
	case Area:
		return "area"
	case Delay:
		return "delay"
	case Power:
		return "power"
	default:
		return "unknown"
	}
}

// Cost summarizes a subnet (or a proposed replacement) along every axis a
// pass might care about. Area, Delay and Power are populated from
// per-entry weights set by techmap; before technology mapping they read 0
// and only Size/Depth are meaningful.
type Cost struct {
	Size  float64
	Depth float64
	Area  float64
	Delay float64
	Power float64
}

// Get reads the Cost field named by d.
func (c Cost) Get(d CostDimension) float64 {
	switch d {
	case Size:
		return c.Size
	case Depth:
		return c.Depth
	case Area:
		return c.Area
	case Delay:
		return c.Delay
	case Power:
		return c.Power
	default:
		return 0
	}
}

// Criterion bounds one cost dimension: a pass candidate whose Indicator
// cost exceeds Bounds (when Bounds is non-nil) is rejected regardless of
// what a Replacer would otherwise accept.
type Criterion struct {
	Indicator CostDimension
	Bounds    *Cost
}

// Satisfies reports whether cost respects the criterion's bound.
func (c Criterion) Satisfies(cost Cost) bool {
	if c.Bounds == nil {
		return true
	}
	return cost.Get(c.Indicator) <= c.Bounds.Get(c.Indicator)
}

// Pass is one optimization step run over a builder in place.
type Pass interface {
	Name() string
	Run(b *builder.SubnetBuilder) error
}

// measureCost computes the cheap, always-available part of a builder's
// cost: live entry count and max output depth. Area/Delay/Power are left
// at 0 here; techmap-aware passes fold in b.Weight(id) themselves.
func measureCost(b *builder.SubnetBuilder) Cost {
	var maxDepth uint32
	size := 0
	for i := 0; i < b.Len(); i++ {
		id := model.EntryID(i)
		sym := b.Symbol(id)
		if sym == model.IN || sym == model.OUT {
			continue
		}
		size++
		if d := b.Depth(id); d > maxDepth {
			maxDepth = d
		}
	}
	return Cost{Size: float64(size), Depth: float64(maxDepth)}
}
