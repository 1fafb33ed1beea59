package builder

import (
	"testing"

	"github.com/hqdem/gatesynth/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCellStrashDedup(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	y := b.AddInput()

	id1 := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	id2 := b.AddCell(model.AND, model.NewLink(y), model.NewLink(x))
	assert.Equal(t, id1, id2, "AND is symmetric: operand order must not matter")
}

func TestAddCellAndConstants(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()

	zero := b.zero()
	one := b.one()

	assert.Equal(t, zero, b.AddCell(model.AND, model.NewLink(x), model.NewLink(zero)))
	assert.Equal(t, x, b.AddCell(model.AND, model.NewLink(x), model.NewLink(one)))
	assert.Equal(t, x, b.AddCell(model.AND, model.NewLink(x), model.NewLink(x)))

	xNot := model.NewLink(x).Inv()
	assert.Equal(t, zero, b.AddCell(model.AND, model.NewLink(x), xNot))
}

func TestAddCellOrConstants(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	zero := b.zero()
	one := b.one()

	assert.Equal(t, one, b.AddCell(model.OR, model.NewLink(x), model.NewLink(one)))
	assert.Equal(t, x, b.AddCell(model.OR, model.NewLink(x), model.NewLink(zero)))
	assert.Equal(t, x, b.AddCell(model.OR, model.NewLink(x), model.NewLink(x)))
}

func TestAddCellXorIdentities(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	zero := b.zero()
	one := b.one()

	assert.Equal(t, zero, b.AddCell(model.XOR, model.NewLink(x), model.NewLink(x)),
		"x XOR x must be 0")
	assert.Equal(t, one, b.AddCell(model.XOR, model.NewLink(x), model.NewLink(x).Inv()),
		"x XOR ~x must be 1")
	assert.Equal(t, x, b.AddCell(model.XOR, model.NewLink(x), model.NewLink(zero)))

	notX := b.AddCell(model.XOR, model.NewLink(x), model.NewLink(one))
	assert.Equal(t, notX, b.AddCell(model.NOT, model.NewLink(x)))
}

func TestAddCellBufNotFusion(t *testing.T) {
	b := NewBuilder()
	y := b.AddInput()

	bufY := b.AddCell(model.BUF, model.NewLink(y))
	bufBufY := b.AddCell(model.BUF, model.NewLink(bufY))
	assert.Equal(t, y, bufBufY, "BUF(BUF(y)) collapses through fusion to y")

	notY := b.AddCell(model.NOT, model.NewLink(y))
	notNotY := b.AddCell(model.NOT, model.NewLink(notY))
	assert.Equal(t, y, notNotY, "NOT(NOT(y)) cancels to y")
}

func TestAddCellMajDegenerate(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	y := b.AddInput()

	// MAJ(x, x, y) = x
	assert.Equal(t, x, b.AddCell(model.MAJ, model.NewLink(x), model.NewLink(x), model.NewLink(y)))
	// MAJ(x, ~x, y) = y
	assert.Equal(t, y, b.AddCell(model.MAJ, model.NewLink(x), model.NewLink(x).Inv(), model.NewLink(y)))
	// MAJ(0, x, y) = AND(x, y)
	zero := b.zero()
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	maj0 := b.AddCell(model.MAJ, model.NewLink(zero), model.NewLink(x), model.NewLink(y))
	assert.Equal(t, and, maj0)
}

func TestAddCellTreeChunking(t *testing.T) {
	b := NewBuilder()
	var ins []model.Link
	for i := 0; i < 5; i++ {
		ins = append(ins, model.NewLink(b.AddInput()))
	}
	root := b.AddCellTree(model.AND, ins, 2)
	assert.True(t, b.Depth(root) >= 2, "a 5-way binary AND tree must have depth >= 2")
}

func TestMakeDropsDeadEntries(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	_ = b.AddCell(model.OR, model.NewLink(x), model.NewLink(y)) // dead: no output
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	b.AddOutput(model.NewLink(and))

	sn := b.Make(true)
	require.NoError(t, sn.Validate())
	assert.Equal(t, 2, sn.NumIn)
	assert.Equal(t, 1, sn.NumOut)
	for i := range sn.Entries {
		assert.NotEqual(t, model.OR, sn.Symbol(model.EntryID(i)), "the unreferenced OR must not survive Make")
	}
}

func TestMakeNoCleanupKeepsDeadEntries(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	or := b.AddCell(model.OR, model.NewLink(x), model.NewLink(y)) // dead: no output
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	b.AddOutput(model.NewLink(and))

	sn := b.Make(false)
	require.NoError(t, sn.Validate())
	assert.Equal(t, 2, sn.NumIn)
	assert.Equal(t, 1, sn.NumOut)
	assert.Equal(t, len(b.entries), len(sn.Entries), "cleanup=false must keep every entry, dead or not")
	assert.Equal(t, model.OR, sn.Symbol(model.EntryID(or)), "the unreferenced OR survives when cleanup is false")
}

func TestReplaceRedirectsFanout(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	out := b.AddOutput(model.NewLink(and))

	rhs := NewBuilder(WithCatalog(b.catalog))
	rx := rhs.AddInput()
	ry := rhs.AddInput()
	ror := rhs.AddCell(model.OR, model.NewLink(rx), model.NewLink(ry))
	rhs.AddOutput(model.NewLink(ror))
	rhsSubnet := rhs.Make(true)

	effect, err := b.Replace(rhsSubnet, IOMap{Inputs: []model.EntryID{x, y}, Outputs: []model.EntryID{and}})
	require.NoError(t, err)
	_ = effect

	sn := b.Make(true)
	require.NoError(t, sn.Validate())
	driver := sn.Entries[sn.Outputs()[0]].Links[0]
	assert.Equal(t, model.OR, sn.Symbol(driver.Entry))
	_ = out
}

func TestSafePasserBoundedAtCreation(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	p := b.NewPasser()
	b.AddCell(model.NOT, model.NewLink(x))

	count := 0
	for {
		if _, ok := p.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 1, count, "passer created before the NOT was added must not see it")
}

func TestSessionMarking(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	session := b.StartSession()
	assert.False(t, b.Visited(x))
	b.MarkEntry(x, session)
	assert.True(t, b.Visited(x))
}

func TestAddCellRejectsFaninOverMax(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	links := make([]model.Link, MaxFanin+1)
	for i := range links {
		links[i] = model.NewLink(x)
	}
	assert.Panics(t, func() { b.AddCell(model.AND, links...) }, "fanin beyond MaxFanin must panic, not silently truncate")
}

func TestAppendRawRejectsFanoutOverMax(t *testing.T) {
	b := NewBuilder()
	x := b.AddInput()
	b.entries[x].refcount = MaxFanout
	assert.Panics(t, func() { b.AddCell(model.NOT, model.NewLink(x)) }, "fanout beyond MaxFanout must panic")
}
