package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZhegalkinSynthExact(t *testing.T) {
	cases := []struct {
		name  string
		nvars int
		ones  []int
	}{
		{"and2", 2, []int{3}},
		{"xor2", 2, []int{1, 2}},
		{"maj3", 3, []int{3, 5, 6, 7}},
		{"const0", 2, nil},
		{"const1", 1, []int{0, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := setBits(c.nvars, c.ones...)
			sub := (ZhegalkinSynth{}).Synthesize(f, nil, 2)
			require.NotNil(t, sub)
			require.NoError(t, sub.Validate())
			assert.True(t, f.Equal(evalSubnet(sub)), "ZhegalkinSynth must realize f exactly")
		})
	}
}

func TestZhegalkinTransformSelfInverse(t *testing.T) {
	// The Mobius transform is its own inverse over GF(2): applying it
	// twice must recover the original truth vector.
	bits := []bool{false, true, true, false, true, false, false, true}
	once := zhegalkinTransform(bits)
	twice := zhegalkinTransform(once)
	assert.Equal(t, bits, twice)
}
