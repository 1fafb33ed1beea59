package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoInputAND hand-assembles a small entry list: a, b, AND(a,b),
// OUT(c). It bypasses the builder package (tested separately) to
// exercise Subnet.Validate in isolation.
func buildTwoInputAND(t *testing.T) *Subnet {
	t.Helper()
	cat := NewCellTypeCatalog()
	return &Subnet{
		Catalog: cat,
		NumIn:   2,
		NumOut:  1,
		Entries: []Entry{
			{Type: cat.BuiltinID(IN)},
			{Type: cat.BuiltinID(IN)},
			{Type: cat.BuiltinID(AND), Links: []Link{{Entry: 0}, {Entry: 1}}},
			{Type: cat.BuiltinID(OUT), Links: []Link{{Entry: 2}}},
		},
	}
}

func TestSubnetValidateValid(t *testing.T) {
	s := buildTwoInputAND(t)
	require.NoError(t, s.Validate())
	assert.Equal(t, []EntryID{0, 1}, s.Inputs())
	assert.Equal(t, []EntryID{3}, s.Outputs())
}

func TestSubnetValidateNonTopological(t *testing.T) {
	s := buildTwoInputAND(t)
	s.Entries[0].Links = []Link{{Entry: 3}} // input links forward: invalid
	assert.ErrorIs(t, s.Validate(), ErrNonTopological)
}

func TestSubnetValidateArityMismatch(t *testing.T) {
	s := buildTwoInputAND(t)
	s.Entries[2].Links = []Link{{Entry: 0}} // MAJ-less AND still variable but OUT/MAJ are checked; use MAJ
	cat := s.Catalog
	s.Entries[2].Type = cat.BuiltinID(MAJ)
	assert.ErrorIs(t, s.Validate(), ErrArityMismatch)
}

func TestSubnetValidateDanglingBuf(t *testing.T) {
	cat := NewCellTypeCatalog()
	s := &Subnet{
		Catalog: cat,
		NumIn:   1,
		NumOut:  1,
		Entries: []Entry{
			{Type: cat.BuiltinID(IN)},
			{Type: cat.BuiltinID(BUF), Links: []Link{{Entry: 0}}},
			{Type: cat.BuiltinID(OUT), Links: []Link{{Entry: 0}}}, // OUT bypasses the BUF
		},
	}
	assert.ErrorIs(t, s.Validate(), ErrDanglingBuf)
}
