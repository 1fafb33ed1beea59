package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPN4SynthExact(t *testing.T) {
	cases := []struct {
		name string
		ones []int
	}{
		{"and4", []int{15}},
		{"maj4ish", []int{7, 11, 13, 14, 15}},
		{"xor4", []int{1, 2, 4, 7, 8, 11, 13, 14}},
		{"const0", nil},
		{"const1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		// x0 AND NOT x1, independent of x2/x3: asymmetric under the input
		// permutation, so canonicalization picks a non-identity fwd.perm
		// and exercises the forward (not inverse) splice-back.
		{"x0_and_not_x1", []int{1, 5, 9, 13}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := setBits(4, c.ones...)
			sub := (NPN4Synth{}).Synthesize(f, nil, 3)
			require.NotNil(t, sub, "every 4-variable function has a class in the NPN4 database")
			require.NoError(t, sub.Validate())
			assert.True(t, f.Equal(evalSubnet(sub)), "NPN4Synth must reproduce the original function after un-transforming")
		})
	}
}

func TestNPN4SynthRejectsWrongArity(t *testing.T) {
	f := setBits(3, 3, 5, 6, 7)
	sub := (NPN4Synth{}).Synthesize(f, nil, 3)
	assert.Nil(t, sub, "NPN4Synth only covers 4-variable functions")
}

func TestCanonicalizeNPN4Idempotent(t *testing.T) {
	canon, _ := canonicalizeNPN4(0xCAFE)
	reCanon, tr := canonicalizeNPN4(canon)
	assert.Equal(t, canon, reCanon, "canonicalizing an already-canonical table must be a fixed point")
	assert.Equal(t, canon, applyNPN(canon, tr))
}
