package synth

import (
	"math/bits"
	"testing"

	"github.com/hqdem/gatesynth/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBoundVarMux returns a 7-variable function where x0 alone
// classifies the remaining six variables into exactly two distinct
// sub-functions: the parity of x1..x6 when x0=0, their conjunction when
// x0=1. This is exactly the shape DSDSynth's bound-set-of-1 search
// should find.
func buildBoundVarMux() truthtable.TruthTable {
	const nvars = 7
	f := truthtable.New(nvars)
	for m := 0; m < 1<<nvars; m++ {
		x0 := m & 1
		rest := m >> 1
		var v bool
		if x0 == 0 {
			v = bits.OnesCount(uint(rest))%2 == 1
		} else {
			v = rest == 63
		}
		if v {
			f.Set(m, true)
		}
	}
	return f
}

func TestDSDSynthBoundVariable(t *testing.T) {
	f := buildBoundVarMux()
	sub := (DSDSynth{}).Synthesize(f, nil, 2)
	require.NotNil(t, sub)
	require.NoError(t, sub.Validate())
	assert.True(t, f.Equal(evalSubnet(sub)), "DSDSynth must realize the bound-variable mux exactly")
}

func TestDSDSynthSmallFallsBackToISOP(t *testing.T) {
	f := setBits(3, 3, 5, 6, 7) // MAJ3 has only 3 vars, no decomposition search needed
	sub := (DSDSynth{}).Synthesize(f, nil, 2)
	require.NotNil(t, sub)
	assert.True(t, f.Equal(evalSubnet(sub)))
}
