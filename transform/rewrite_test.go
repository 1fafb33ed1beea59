package transform_test

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/transform"
	"github.com/stretchr/testify/require"
)

// buildChainedAnd3 builds AND(AND(x0,x1),x2) as two separate binary AND
// cells, the inefficient shape a 4-feasible rewrite should collapse into
// one 3-input AND.
func buildChainedAnd3(t *testing.T) (*builder.SubnetBuilder, []model.EntryID) {
	t.Helper()
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	x2 := b.AddInput()
	e1 := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	e2 := b.AddCell(model.AND, model.NewLink(e1), model.NewLink(x2))
	b.AddOutput(model.NewLink(e2))
	return b, []model.EntryID{x0, x1, x2}
}

func TestRewriteShrinksChainedAnd(t *testing.T) {
	b, _ := buildChainedAnd3(t)
	before := b.Make(true)
	beforeSize := len(before.Entries) - before.NumIn - before.NumOut

	require.NoError(t, transform.Rewrite(4, false).Run(b))

	after := b.Make(true)
	afterSize := len(after.Entries) - after.NumIn - after.NumOut
	require.LessOrEqual(t, afterSize, beforeSize)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
}

func TestRewriteZeroCostNeverWorsens(t *testing.T) {
	b, _ := buildChainedAnd3(t)
	before := b.Make(true)

	require.NoError(t, transform.Rewrite(4, true).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
	require.LessOrEqual(t, len(after.Entries)-after.NumIn-after.NumOut, len(before.Entries)-before.NumIn-before.NumOut)
}
