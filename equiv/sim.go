package equiv

import (
	"math/rand"

	"github.com/hqdem/gatesynth/model"
)

// DefaultThreshold is the largest input count SimChecker enumerates
// exhaustively. Above it, 2^NumIn assignments is no longer a bounded
// amount of work, so SimChecker switches to sampling.
const DefaultThreshold = 20

// DefaultTrials is how many random assignments SimChecker draws once it
// falls back to sampling.
const DefaultTrials = 4096

// SimOptions configures a SimChecker. The zero value is valid: it
// resolves to DefaultThreshold / DefaultTrials and a fixed seed, so two
// SimCheckers built with the zero value always agree on a given pair of
// subnets.
type SimOptions struct {
	// Threshold is the largest NumIn exhaustively enumerated. <= 0 means
	// DefaultThreshold.
	Threshold int
	// Trials is how many random vectors are drawn above Threshold. <= 0
	// means DefaultTrials.
	Trials int
	// Seed drives the random vector generator. Left at 0, sampling is
	// still deterministic across runs, just not unpredictable.
	Seed int64
}

func (o SimOptions) resolve() (threshold, trials int) {
	threshold = o.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	trials = o.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	return threshold, trials
}

// SimChecker is the in-tree equiv.Checker: exhaustive truth-table
// comparison for small designs, corner-case-plus-random sampling
// otherwise. A miss between the two subnets under any tested vector is
// conclusive (NotEqual); surviving every sampled vector without
// exhaustive coverage only proves Unknown — sampling can never certify
// equivalence the way a SAT or BDD backend would.
type SimChecker struct {
	Opts SimOptions
}

// NewSimChecker returns a SimChecker configured with DefaultThreshold and
// DefaultTrials.
func NewSimChecker() *SimChecker {
	return &SimChecker{}
}

// Equiv implements Checker.
func (c *SimChecker) Equiv(a, b *model.Subnet) (Result, error) {
	if a.NumIn != b.NumIn || a.NumOut != b.NumOut {
		return NotEqual, ErrSignatureMismatch
	}
	threshold, trials := c.Opts.resolve()

	if a.NumIn <= threshold {
		total := 1 << uint(a.NumIn)
		for x := 0; x < total; x++ {
			inputs := bitsOf(x, a.NumIn)
			diff, err := differ(a, b, inputs)
			if err != nil {
				return Unknown, err
			}
			if diff {
				return NotEqual, nil
			}
		}
		return Equal, nil
	}

	for _, inputs := range cornerCases(a.NumIn) {
		diff, err := differ(a, b, inputs)
		if err != nil {
			return Unknown, err
		}
		if diff {
			return NotEqual, nil
		}
	}

	rng := rand.New(rand.NewSource(c.Opts.Seed))
	for i := 0; i < trials; i++ {
		inputs := randomBits(rng, a.NumIn)
		diff, err := differ(a, b, inputs)
		if err != nil {
			return Unknown, err
		}
		if diff {
			return NotEqual, nil
		}
	}
	return Unknown, nil
}

func differ(a, b *model.Subnet, inputs []bool) (bool, error) {
	outA, err := simulate(a, inputs)
	if err != nil {
		return false, err
	}
	outB, err := simulate(b, inputs)
	if err != nil {
		return false, err
	}
	for i := range outA {
		if outA[i] != outB[i] {
			return true, nil
		}
	}
	return false, nil
}

func bitsOf(x, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = (x>>uint(i))&1 != 0
	}
	return out
}

func randomBits(rng *rand.Rand, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = rng.Intn(2) == 1
	}
	return out
}

// cornerCases returns the all-zero, all-one, one-hot, and walking-zero
// vectors for an n-input function: cheap, structurally likely spots for
// a resynthesis bug to show up, checked before spending the random
// budget.
func cornerCases(n int) [][]bool {
	cases := make([][]bool, 0, 2*n+2)
	zero := make([]bool, n)
	one := make([]bool, n)
	for i := range one {
		one[i] = true
	}
	cases = append(cases, zero, one)
	for i := 0; i < n; i++ {
		hot := make([]bool, n)
		hot[i] = true
		cases = append(cases, hot)

		notHot := make([]bool, n)
		for j := range notHot {
			notHot[j] = true
		}
		notHot[i] = false
		cases = append(cases, notHot)
	}
	return cases
}
