package design

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePointAndGotoPointRoundTrip(t *testing.T) {
	d := New("top")
	d.AddSubnet("core", buildAndSubnet(t))
	d.SavePoint("before")

	// mutate after the checkpoint: add a second subnet and an arc.
	d.AddSubnet("extra", buildAndSubnet(t))
	d.Connect("core", "extra", DataArc)
	require.Len(t, d.Subnets, 2)
	require.Len(t, d.Arcs(), 1)

	require.NoError(t, d.GotoPoint("before"))
	assert.Len(t, d.Subnets, 1)
	assert.Empty(t, d.Arcs())
}

func TestGotoPointUnknownTagLeavesDesignUntouched(t *testing.T) {
	d := New("top")
	d.AddSubnet("core", buildAndSubnet(t))

	err := d.GotoPoint("missing")
	require.Error(t, err)
	assert.Len(t, d.Subnets, 1)
}

func TestGotoPointRestoreIsIndependentOfCheckpoint(t *testing.T) {
	d := New("top")
	b := builder.NewBuilder()
	x0 := b.AddInput()
	b.AddOutput(model.NewLink(x0))
	d.AddSubnet("core", b)
	d.SavePoint("tag")

	require.NoError(t, d.GotoPoint("tag"))
	restored := d.Subnets["core"]
	x1 := restored.AddInput()
	restored.AddOutput(model.NewLink(x1))

	require.NoError(t, d.GotoPoint("tag"))
	assert.Equal(t, 1, d.Subnets["core"].NumIn())
}

func TestListPointsReportsEveryTag(t *testing.T) {
	d := New("top")
	d.AddSubnet("core", buildAndSubnet(t))
	d.SavePoint("a")
	d.SavePoint("b")

	assert.ElementsMatch(t, []string{"a", "b"}, d.ListPoints())
}
