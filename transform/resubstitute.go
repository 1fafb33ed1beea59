package transform

import "github.com/hqdem/gatesynth/builder"

// DefaultCutSize, DefaultMaxLevels and DefaultMaxDivisors are the
// resubstitute defaults Resubstitute falls back to when a caller passes a
// non-positive value.
const (
	DefaultCutSize     = 8
	DefaultMaxLevels   = 1
	DefaultMaxDivisors = 150
)

type resubstitutePass struct {
	cutSize     int
	maxLevels   int
	maxDivisors int
	replacer    Replacer
}

// Resubstitute builds a Pass running the collect-care, collect-divisors,
// constants, zero/one/two/three-resub, commit-or-skip state machine at
// every internal entry. maxLevels is accepted for parity with the full
// fanout-bounded care computation; see resub_care.go for how this
// implementation's care set differs. zeroCost relaxes the committing
// Replacer to also accept size-neutral substitutions.
func Resubstitute(cutSize, maxLevels, maxDivisors int, zeroCost bool) Pass {
	if cutSize <= 0 {
		cutSize = DefaultCutSize
	}
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}
	if maxDivisors <= 0 {
		maxDivisors = DefaultMaxDivisors
	}
	return &resubstitutePass{
		cutSize:     cutSize,
		maxLevels:   maxLevels,
		maxDivisors: maxDivisors,
		replacer:    DefaultReplacer{ZeroCost: zeroCost},
	}
}

func (p *resubstitutePass) Name() string { return "resubstitute" }

func (p *resubstitutePass) Run(b *builder.SubnetBuilder) error {
	it := NewAreaSubnetIterator(b)
	applied := 0

	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		pivot, ok := collectCare(b, id, p.cutSize)
		if !ok {
			continue
		}
		divisors := collectDivisors(b, pivot, p.maxDivisors)

		if sub := tryConstant(pivot); sub != nil {
			if commitResub(b, pivot, &resubCandidate{sub: sub}, p.replacer) {
				applied++
			}
			continue
		}

		candidates := []func() *resubCandidate{
			func() *resubCandidate { return tryZeroResub(pivot, divisors) },
			func() *resubCandidate { return tryOneResub(pivot, divisors) },
			func() *resubCandidate { return tryTwoResub(pivot, divisors) },
			func() *resubCandidate { return tryThreeResub(pivot, divisors) },
		}
		for _, try := range candidates {
			if cand := try(); cand != nil && commitResub(b, pivot, cand, p.replacer) {
				applied++
				break
			}
		}
	}

	log.WithField("cutSize", p.cutSize).WithField("applied", applied).Info("resubstitute pass finished")
	return nil
}
