package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeMicheliSynthExact(t *testing.T) {
	cases := []struct {
		name  string
		nvars int
		ones  []int
	}{
		{"and2", 2, []int{3}},
		{"xor2", 2, []int{1, 2}}, // non-unate, must still succeed unlike Akers
		{"maj3", 3, []int{3, 5, 6, 7}},
		{"const0", 2, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := setBits(c.nvars, c.ones...)
			sub := (DeMicheliSynth{}).Synthesize(f, nil, 2)
			require.NotNil(t, sub)
			require.NoError(t, sub.Validate())
			assert.True(t, f.Equal(evalSubnet(sub)), "DeMicheliSynth must realize f exactly")
		})
	}
}

func TestDeMicheliSynthNodeBudget(t *testing.T) {
	f := setBits(2, 1, 2)
	sub := DeMicheliSynth{MaxNodes: 0}.Synthesize(f, nil, 2)
	assert.NotNil(t, sub, "a budget of 0 falls back to the default, not an immediate failure")

	tiny := DeMicheliSynth{MaxNodes: 1}.Synthesize(f, nil, 2)
	_ = tiny // may legitimately be nil once the fold exceeds a 1-node budget
}
