package synth

import (
	"testing"

	"github.com/hqdem/gatesynth/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildANDPartitioned returns a 7-variable function that is exactly
// maj3(x0,x1,x2) AND and4(x3,x4,x5,x6), a genuine bipartition for
// BiDecompSynth's search to find.
func buildANDPartitioned() truthtable.TruthTable {
	const nvars = 7
	f := truthtable.New(nvars)
	for m := 0; m < 1<<nvars; m++ {
		a := m & 0x7
		bSet := 0
		for i := 0; i < 4; i++ {
			if m&(1<<uint(3+i)) != 0 {
				bSet++
			}
		}
		ones := 0
		for i := 0; i < 3; i++ {
			if a&(1<<uint(i)) != 0 {
				ones++
			}
		}
		g := ones >= 2
		h := bSet == 4
		if g && h {
			f.Set(m, true)
		}
	}
	return f
}

func TestBiDecompSynthFindsANDPartition(t *testing.T) {
	f := buildANDPartitioned()
	sub := (BiDecompSynth{}).Synthesize(f, nil, 2)
	require.NotNil(t, sub)
	require.NoError(t, sub.Validate())
	assert.True(t, f.Equal(evalSubnet(sub)), "BiDecompSynth must realize the AND-partitioned function exactly")
}

func TestBiDecompSynthSmallFallsBackToISOP(t *testing.T) {
	f := setBits(2, 1, 2) // XOR2
	sub := (BiDecompSynth{}).Synthesize(f, nil, 2)
	require.NotNil(t, sub)
	assert.True(t, f.Equal(evalSubnet(sub)))
}
