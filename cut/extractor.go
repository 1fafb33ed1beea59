package cut

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// ExtractorOption configures a CutExtractor at construction time.
type ExtractorOption func(*CutExtractor)

// WithMaxLeaves overrides DefaultMaxLeaves.
func WithMaxLeaves(k int) ExtractorOption {
	return func(e *CutExtractor) { e.maxLeaves = k }
}

// WithMaxCutsPerEntry overrides DefaultMaxCutsPerEntry.
func WithMaxCutsPerEntry(n int) ExtractorOption {
	return func(e *CutExtractor) { e.maxCuts = n }
}

// CutExtractor computes and caches k-feasible cuts over a builder arena.
// A cache entry is invalidated only by an explicit RecomputeCuts call —
// callers that mutate the arena (via Replace) around a cached entry are
// responsible for recomputing anything downstream of the change.
type CutExtractor struct {
	b         *builder.SubnetBuilder
	maxLeaves int
	maxCuts   int
	cache     map[model.EntryID][]Cut
}

// NewExtractor creates a CutExtractor bound to b.
func NewExtractor(b *builder.SubnetBuilder, opts ...ExtractorOption) *CutExtractor {
	e := &CutExtractor{
		b:         b,
		maxLeaves: DefaultMaxLeaves,
		maxCuts:   DefaultMaxCutsPerEntry,
		cache:     make(map[model.EntryID][]Cut),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cuts returns the cached (or freshly computed) cuts rooted at id.
func (e *CutExtractor) Cuts(id model.EntryID) []Cut {
	if cuts, ok := e.cache[id]; ok {
		return cuts
	}
	return e.compute(id)
}

// RecomputeCuts forces id (and only id) to be recomputed, discarding any
// cached result.
func (e *CutExtractor) RecomputeCuts(id model.EntryID) []Cut {
	delete(e.cache, id)
	return e.compute(id)
}

func (e *CutExtractor) compute(id model.EntryID) []Cut {
	trivial := newCut(id, []model.EntryID{id})
	sym := e.b.Symbol(id)
	links := e.b.Links(id)

	if len(links) == 0 || sym.IsSequential() {
		cuts := []Cut{trivial}
		e.cache[id] = cuts
		return cuts
	}

	combos := [][]model.EntryID{{}}
	for _, l := range links {
		faninCuts := e.Cuts(l.Entry)
		var next [][]model.EntryID
		for _, combo := range combos {
			for _, fc := range faninCuts {
				merged := unionSorted(combo, fc.Leaves)
				if len(merged) <= e.maxLeaves {
					next = append(next, merged)
				}
			}
			if len(next) > e.maxCuts*4 {
				break // bound the intermediate cartesian blow-up
			}
		}
		combos = dedupeCombos(next)
	}

	cuts := make([]Cut, 0, len(combos)+1)
	cuts = append(cuts, trivial)
	for _, combo := range combos {
		cuts = append(cuts, newCut(id, combo))
	}
	cuts = pruneDominated(cuts)
	if len(cuts) > e.maxCuts {
		cuts = cuts[:e.maxCuts]
	}
	e.cache[id] = cuts
	return cuts
}

func unionSorted(a, b []model.EntryID) []model.EntryID {
	seen := make(map[model.EntryID]bool, len(a)+len(b))
	out := make([]model.EntryID, 0, len(a)+len(b))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func dedupeCombos(combos [][]model.EntryID) [][]model.EntryID {
	seen := make(map[string]bool, len(combos))
	var out [][]model.EntryID
	for _, c := range combos {
		sorted := newCut(0, c).Leaves
		k := linksKeyOf(sorted)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, sorted)
	}
	return out
}

func linksKeyOf(leaves []model.EntryID) string {
	buf := make([]byte, 0, len(leaves)*4)
	for _, l := range leaves {
		buf = append(buf, byte(l>>24), byte(l>>16), byte(l>>8), byte(l))
	}
	return string(buf)
}

// pruneDominated removes any cut whose leaf set is a strict superset of
// another cut rooted at the same entry — it can never be more useful for
// resynthesis than the smaller cut it contains.
func pruneDominated(cuts []Cut) []Cut {
	keep := make([]bool, len(cuts))
	for i := range cuts {
		keep[i] = true
	}
	for i, ci := range cuts {
		for j, cj := range cuts {
			if i == j || !keep[i] {
				continue
			}
			if len(cj.Leaves) < len(ci.Leaves) && cj.isSubsetOf(ci) {
				keep[i] = false
				break
			}
			if len(cj.Leaves) == len(ci.Leaves) && j < i && cj.equalLeaves(ci) {
				keep[i] = false
				break
			}
		}
	}
	out := make([]Cut, 0, len(cuts))
	for i, c := range cuts {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}
