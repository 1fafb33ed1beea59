package cut_test

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) (*builder.SubnetBuilder, model.EntryID) {
	t.Helper()
	b := builder.NewBuilder()
	a := b.AddInput()
	c := b.AddInput()
	and1 := b.AddCell(model.AND, model.NewLink(a), model.NewLink(c))
	or1 := b.AddCell(model.OR, model.NewLink(a), model.NewLink(c))
	top := b.AddCell(model.AND, model.NewLink(and1), model.NewLink(or1))
	return b, top
}

func TestCutsIncludeTrivialAndBoundedLeaves(t *testing.T) {
	b, top := buildDiamond(t)
	ext := cut.NewExtractor(b, cut.WithMaxLeaves(4))
	cuts := ext.Cuts(top)
	require.NotEmpty(t, cuts)

	foundTrivial := false
	for _, c := range cuts {
		assert.LessOrEqual(t, len(c.Leaves), 4)
		if len(c.Leaves) == 1 && c.Leaves[0] == top {
			foundTrivial = true
		}
	}
	assert.True(t, foundTrivial)
}

func TestCutsPruneDominatedSets(t *testing.T) {
	b, top := buildDiamond(t)
	ext := cut.NewExtractor(b, cut.WithMaxLeaves(4))
	cuts := ext.Cuts(top)

	for i, ci := range cuts {
		for j, cj := range cuts {
			if i == j {
				continue
			}
			assert.False(t, subset(ci.Leaves, cj.Leaves) && len(ci.Leaves) < len(cj.Leaves),
				"a smaller cut must not coexist with a strict superset of it")
		}
	}
}

func subset(a, b []model.EntryID) bool {
	set := make(map[model.EntryID]bool, len(b))
	for _, x := range b {
		set[x] = true
	}
	for _, x := range a {
		if !set[x] {
			return false
		}
	}
	return true
}

func TestReconvergenceCutBoundedByK(t *testing.T) {
	b, top := buildDiamond(t)
	c := cut.ReconvergenceCut(b, top, 2)
	assert.LessOrEqual(t, len(c.Leaves), 2)
}

func TestMFFCCollectsDeadEntries(t *testing.T) {
	b := builder.NewBuilder()
	a := b.AddInput()
	c := b.AddInput()
	and1 := b.AddCell(model.AND, model.NewLink(a), model.NewLink(c))
	not1 := b.AddCell(model.NOT, model.NewLink(and1))
	b.AddOutput(model.NewLink(not1))

	cone := cut.MFFC(b, not1, nil)
	assert.Contains(t, cone, not1)
	assert.Contains(t, cone, and1)
}
