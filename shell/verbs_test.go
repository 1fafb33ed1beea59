package shell_test

import (
	"bytes"
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/equiv"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/shell"
	"github.com/hqdem/gatesynth/techmap"
	"github.com/hqdem/gatesynth/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truthtableAnd2() truthtable.TruthTable {
	return truthtable.Var(2, 0).And(truthtable.Var(2, 1))
}

func flatNLDM(v float64) techmap.NLDMTable {
	grid := [][]float64{{v, v}, {v, v}}
	return techmap.NLDMTable{Transitions: []float64{0, 1}, Caps: []float64{0, 1}, Delay: grid, Slew: grid}
}

func buildAnd(t *testing.T) *builder.SubnetBuilder {
	t.Helper()
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	b.AddOutput(model.NewLink(and))
	return b
}

func newTestSession(t *testing.T) *shell.Session {
	t.Helper()
	sess := shell.NewSession(&bytes.Buffer{})
	sess.NewDesign("top")
	sess.Current.AddSubnet("core", buildAnd(t))
	sess.Current.AddSubnet("core2", buildAnd(t))
	return sess
}

func TestRequireDesignErrorsWithoutOne(t *testing.T) {
	sess := shell.NewSession(&bytes.Buffer{})
	_, err := sess.StatDesign()
	assert.ErrorIs(t, err, shell.ErrNoDesign)
}

func TestSavePointAndGotoPointThroughSession(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.SavePoint("a"))
	sess.Current.AddSubnet("extra", buildAnd(t))
	require.NoError(t, sess.GotoPoint("a"))
	assert.Len(t, sess.Current.Subnets, 2)
}

func TestStatDesignReportsCounts(t *testing.T) {
	sess := newTestSession(t)
	stat, err := sess.StatDesign()
	require.NoError(t, err)
	assert.Equal(t, 2, stat.NumSubnets)
	assert.False(t, stat.HasLibrary)
}

func TestTechmapRequiresLibrary(t *testing.T) {
	sess := newTestSession(t)
	err := sess.Techmap("area")
	assert.ErrorIs(t, err, shell.ErrLibraryNotLoaded)
}

func TestTechmapThenUnmapRoundTrips(t *testing.T) {
	sess := newTestSession(t)
	pins := []techmap.NLDMTable{flatNLDM(0.1), flatNLDM(0.1)}
	and2 := techmap.NewLibCell("AND2X1", truthtableAnd2(), pins, 1.0)
	sess.Current.Library = &techmap.Library{Cells: []techmap.LibCell{and2}}

	require.NoError(t, sess.Techmap("area"))
	require.NoError(t, sess.Unmap())

	for i := 0; i < sess.Current.Subnets["core"].Len(); i++ {
		assert.NotEqual(t, model.UNDEF, sess.Current.Subnets["core"].Symbol(model.EntryID(i)))
	}
}

func TestLECReportsEqualForIdenticalSubnets(t *testing.T) {
	sess := newTestSession(t)
	result, err := sess.LEC("rnd", "core", "core2")
	require.NoError(t, err)
	assert.Equal(t, equiv.Equal, result)
}

func TestLECUnknownSubnetIsInputError(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.LEC("rnd", "core", "missing")
	assert.ErrorIs(t, err, shell.ErrUnknownSubnet)
}
