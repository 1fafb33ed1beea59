package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSymbolString(t *testing.T) {
	cases := []struct {
		sym  CellSymbol
		want string
	}{
		{AND, "AND"},
		{XOR, "XOR"},
		{SDFF, "sDFF"},
		{CellSymbol(9999), "UNDEF"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.sym.String())
	}
}

func TestCellSymbolClassification(t *testing.T) {
	assert.True(t, AND.IsSymmetric())
	assert.False(t, NOT.IsSymmetric())
	assert.True(t, DFF.IsSequential())
	assert.False(t, AND.IsSequential())
	assert.True(t, ZERO.IsConst())
	assert.True(t, ONE.IsConst())
	assert.False(t, AND.IsConst())

	n, ok := MAJ.FixedArity()
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = AND.FixedArity()
	assert.False(t, ok, "AND is variable-arity until addCellTree bounds it")
}

func TestLinkPacking(t *testing.T) {
	l := Link{Entry: 12345, Port: 3, Inverted: true}
	packed := l.Packed()
	got := UnpackLink(packed)
	assert.Equal(t, l, got)
}

func TestCellTypeCatalogBuiltins(t *testing.T) {
	cat := NewCellTypeCatalog()
	id := cat.BuiltinID(AND)
	ct := cat.Get(id)
	require.NotNil(t, ct)
	assert.Equal(t, AND, ct.Symbol)
	assert.Equal(t, "AND", ct.Name)
}

func TestCellTypeCatalogRegisterUserType(t *testing.T) {
	cat := NewCellTypeCatalog()
	id1 := cat.RegisterUserType("half_adder", nil, Attrs{IsSubnet: true})
	id2 := cat.RegisterUserType("half_adder", nil, Attrs{IsSubnet: true})
	assert.Equal(t, id1, id2, "registering the same name twice is idempotent")

	ct := cat.GetByName("half_adder")
	require.NotNil(t, ct)
	assert.True(t, ct.Attrs.IsSubnet)
}
