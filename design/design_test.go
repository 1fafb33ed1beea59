package design

import (
	"bytes"
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAndSubnet(t *testing.T) *builder.SubnetBuilder {
	t.Helper()
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	b.AddOutput(model.NewLink(and))
	return b
}

func TestDesignAddSubnetAndConnect(t *testing.T) {
	d := New("top")
	d.AddSubnet("core", buildAndSubnet(t))
	d.AddSubnet("pad", buildAndSubnet(t))
	d.Connect("core", "pad", ClockArc)

	require.Len(t, d.Arcs(), 1)
	assert.Equal(t, "core", d.Arcs()[0].From)
	assert.Equal(t, ClockArc, d.Arcs()[0].Kind)
}

func TestDesignStatReflectsContents(t *testing.T) {
	d := New("top")
	d.AddSubnet("core", buildAndSubnet(t))
	d.SavePoint("initial")

	stat := d.Stat()
	assert.Equal(t, "top", stat.Name)
	assert.Equal(t, 1, stat.NumSubnets)
	assert.False(t, stat.HasLibrary)
	assert.Contains(t, stat.Checkpoints, "initial")
}

func TestDesignWriteDataflowIsDeterministic(t *testing.T) {
	d := New("top")
	d.AddSubnet("b_subnet", buildAndSubnet(t))
	d.AddSubnet("a_subnet", buildAndSubnet(t))
	d.Connect("a_subnet", "b_subnet", DataArc)

	var first, second bytes.Buffer
	require.NoError(t, WriteDataflow(&first, d))
	require.NoError(t, WriteDataflow(&second, d))
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "a_subnet -> b_subnet [data]")
}
