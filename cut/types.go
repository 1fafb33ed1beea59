package cut

import (
	"sort"

	"github.com/hqdem/gatesynth/model"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "cut")

// DefaultMaxLeaves is the typical k-feasibility bound used by rewrite and
// resubstitute passes when the caller does not override it.
const DefaultMaxLeaves = 6

// DefaultMaxCutsPerEntry caps how many cuts CutExtractor keeps per entry,
// trading completeness for bounded memory on wide fan-in networks.
const DefaultMaxCutsPerEntry = 8

// Cut is a k-feasible cut: root's value is a function of exactly Leaves,
// in some topological order. Sig is a Bloom-style signature over leaf
// IDs, checked before the exact subset test in isSubsetOf.
type Cut struct {
	Root   model.EntryID
	Leaves []model.EntryID
	Sig    uint64
}

func newCut(root model.EntryID, leaves []model.EntryID) Cut {
	sorted := append([]model.EntryID(nil), leaves...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Cut{Root: root, Leaves: sorted, Sig: signature(sorted)}
}

func signature(leaves []model.EntryID) uint64 {
	var sig uint64
	for _, l := range leaves {
		sig |= 1 << (uint(l) % 64)
	}
	return sig
}

// isSubsetOf reports whether c's leaves are a subset of other's leaves,
// using the signature as a cheap pre-filter.
func (c Cut) isSubsetOf(other Cut) bool {
	if c.Sig&^other.Sig != 0 {
		return false
	}
	if len(c.Leaves) > len(other.Leaves) {
		return false
	}
	j := 0
	for _, l := range c.Leaves {
		for j < len(other.Leaves) && other.Leaves[j] < l {
			j++
		}
		if j >= len(other.Leaves) || other.Leaves[j] != l {
			return false
		}
	}
	return true
}

func (c Cut) equalLeaves(other Cut) bool {
	if len(c.Leaves) != len(other.Leaves) {
		return false
	}
	for i := range c.Leaves {
		if c.Leaves[i] != other.Leaves[i] {
			return false
		}
	}
	return true
}
