package transform_test

import (
	"testing"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/transform"
	"github.com/stretchr/testify/require"
)

// buildUnfactoredOrOfAnds builds OR(AND(x0,x1),AND(x0,x2)) as three gates,
// the distributed shape x0*(x1+x2) factors down to two.
func buildUnfactoredOrOfAnds(t *testing.T) *builder.SubnetBuilder {
	t.Helper()
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	x2 := b.AddInput()
	a1 := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	a2 := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x2))
	or := b.AddCell(model.OR, model.NewLink(a1), model.NewLink(a2))
	b.AddOutput(model.NewLink(or))
	return b
}

func TestRefactorFactorsDistributedForm(t *testing.T) {
	b := buildUnfactoredOrOfAnds(t)
	before := b.Make(true)
	beforeSize := len(before.Entries) - before.NumIn - before.NumOut

	require.NoError(t, transform.Refactor(transform.RefactorDefault).Run(b))

	after := b.Make(true)
	afterSize := len(after.Entries) - after.NumIn - after.NumOut
	require.LessOrEqual(t, afterSize, beforeSize)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
}

func TestRefactorAreaVariantPreservesFunction(t *testing.T) {
	b := buildUnfactoredOrOfAnds(t)
	before := b.Make(true)

	require.NoError(t, transform.Refactor(transform.RefactorArea).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
}

func TestRefactorDepthVariantPreservesFunction(t *testing.T) {
	b := buildUnfactoredOrOfAnds(t)
	before := b.Make(true)

	require.NoError(t, transform.Refactor(transform.RefactorDepth).Run(b))

	after := b.Make(true)
	require.True(t, evalSubnet(before).Equal(evalSubnet(after)))
}
