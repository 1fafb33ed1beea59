package truthtable_test

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	tt "github.com/hqdem/gatesynth/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMatchesExpectedFunction(t *testing.T) {
	b := builder.NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	z := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	xorz := b.AddCell(model.XOR, model.NewLink(and), model.NewLink(z))

	table, err := tt.Evaluate(b, []model.EntryID{x, y, z}, xorz)
	require.NoError(t, err)

	expected := tt.Var(3, 0).And(tt.Var(3, 1)).Xor(tt.Var(3, 2))
	assert.True(t, expected.Equal(table))
}

func TestEvaluateRejectsSequential(t *testing.T) {
	b := builder.NewBuilder()
	d := b.AddInput()
	clk := b.AddInput()
	dff := b.AddCell(model.DFF, model.NewLink(d), model.NewLink(clk))

	_, err := tt.Evaluate(b, []model.EntryID{d, clk}, dff)
	assert.ErrorIs(t, err, tt.ErrSequentialEntry)
}
