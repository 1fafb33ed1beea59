package transform_test

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/transform"
	"github.com/stretchr/testify/require"
)

func TestResubstituteDetectsConstantZero(t *testing.T) {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	nx0 := b.AddCell(model.NOT, model.NewLink(x0))
	andz := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(nx0))
	b.AddOutput(model.NewLink(andz))
	before := b.Make(true)

	require.NoError(t, transform.Resubstitute(0, 0, 0, false).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
	require.Less(t, len(after.Entries)-after.NumIn-after.NumOut, len(before.Entries)-before.NumIn-before.NumOut)
}

// TestResubstituteZeroResubReusesExistingDivisor builds a pivot cone
// computing x0 XOR x1 out of OR/AND/NOT primitives while a plain XOR cell
// over the same inputs already sits earlier in the arena: resubstitution
// should notice the duplication and redirect the pivot to the existing
// gate, dropping its own private cone.
func TestResubstituteZeroResubReusesExistingDivisor(t *testing.T) {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	simpleXor := b.AddCell(model.XOR, model.NewLink(x0), model.NewLink(x1))

	or := b.AddCell(model.OR, model.NewLink(x0), model.NewLink(x1))
	and := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	notAnd := b.AddCell(model.NOT, model.NewLink(and))
	pivot := b.AddCell(model.AND, model.NewLink(or), model.NewLink(notAnd))
	b.AddOutput(model.NewLink(pivot))
	before := b.Make(true)

	require.NoError(t, transform.Resubstitute(0, 0, 0, false).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
	require.Less(t, len(after.Entries)-after.NumIn-after.NumOut, len(before.Entries)-before.NumIn-before.NumOut)
	_ = simpleXor
}

// TestResubstituteOneResubFindsComplementedDivisor builds a pivot computing
// NAND(x0,x1) via a De Morgan OR-of-NOTs cone while a plain AND over the
// same inputs sits earlier in the arena: one-resub should find that the
// complement of that AND already equals the pivot's function.
func TestResubstituteOneResubFindsComplementedDivisor(t *testing.T) {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	andDirect := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))

	nx0 := b.AddCell(model.NOT, model.NewLink(x0))
	nx1 := b.AddCell(model.NOT, model.NewLink(x1))
	pivot := b.AddCell(model.OR, model.NewLink(nx0), model.NewLink(nx1))
	b.AddOutput(model.NewLink(pivot))
	before := b.Make(true)

	require.NoError(t, transform.Resubstitute(0, 0, 0, false).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
	require.Less(t, len(after.Entries)-after.NumIn-after.NumOut, len(before.Entries)-before.NumIn-before.NumOut)
	_ = andDirect
}

// TestResubstituteTwoResubRecombinesDivisors builds a pivot that is
// already exactly the OR of two independent two-input ANDs, giving
// two-resub a pair of existing divisors whose combination reproduces the
// pivot's function; committed zero-cost since this splice trades the
// pivot gate for a freshly built equivalent without changing size.
func TestResubstituteTwoResubRecombinesDivisors(t *testing.T) {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	x2 := b.AddInput()
	x3 := b.AddInput()
	d1 := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	d2 := b.AddCell(model.AND, model.NewLink(x2), model.NewLink(x3))
	pivot := b.AddCell(model.OR, model.NewLink(d1), model.NewLink(d2))
	b.AddOutput(model.NewLink(pivot))
	before := b.Make(true)

	require.NoError(t, transform.Resubstitute(0, 0, 0, true).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
}

func TestResubstituteSkipsSingleGateMFFC(t *testing.T) {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	b.AddOutput(model.NewLink(and))
	before := b.Make(true)

	require.NoError(t, transform.Resubstitute(0, 0, 0, false).Run(b))

	after := b.Make(true)
	require.Equal(t, len(before.Entries), len(after.Entries))
}
