package techmap

import "github.com/hqdem/gatesynth/truthtable"

// maxNPNVars bounds the functions techmap canonicalizes to NPN classes:
// cuts and library cells beyond 6 inputs are vanishingly rare in practice,
// and capping here keeps CanonicalizeNPN's brute-force permutation search
// (n! * 2^n * 2) cheap and its pattern representable in a single uint64 —
// not coincidentally the same bound truthtable.New uses to pick its
// single-word backing representation.
const maxNPNVars = 6

// CanonicalizeNPN reduces fn to its NPN class: the function reachable by
// permuting fn's inputs, complementing any subset of them, and optionally
// complementing the output, that has the lexicographically smallest
// minterm pattern. Two functions share a class exactly when one is an NPN
// transform of the other, which is what lets a cut with an arbitrary pin
// order and polarity match a library cell described the same way.
func CanonicalizeNPN(fn truthtable.TruthTable) NPNClass {
	n := fn.NumVars()
	if n > maxNPNVars {
		panic("techmap: CanonicalizeNPN: function has more than 6 variables")
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := uint64(^uint64(0))
	permute(perm, 0, func(p []int) {
		nMasks := 1 << uint(n)
		for negMask := 0; negMask < nMasks; negMask++ {
			pattern := transformPattern(fn, p, negMask, false)
			if pattern < best {
				best = pattern
			}
			pattern = transformPattern(fn, p, negMask, true)
			if pattern < best {
				best = pattern
			}
		}
	})
	return NPNClass{NumVars: n, Pattern: best}
}

// transformPattern evaluates fn under the input permutation perm, input
// negation mask negMask (bit i flips variable i before lookup), and
// optional output negation, packing the 2^n results into a uint64 with
// minterm index as the bit position.
func transformPattern(fn truthtable.TruthTable, perm []int, negMask int, negOut bool) uint64 {
	n := fn.NumVars()
	rows := 1 << uint(n)
	var pattern uint64
	for m := 0; m < rows; m++ {
		var srcIndex int
		for i := 0; i < n; i++ {
			bit := (m >> uint(i)) & 1
			if negMask&(1<<uint(i)) != 0 {
				bit ^= 1
			}
			srcIndex |= bit << uint(perm[i])
		}
		v := fn.Get(srcIndex)
		if negOut {
			v = !v
		}
		if v {
			pattern |= 1 << uint(m)
		}
	}
	return pattern
}

// NPNMatch records the concrete transform that turns proto (a library
// cell's own function) into some target function fn of the same arity:
// proto's pin Perm[i] is driven by fn's variable i, complemented first
// when NegMask has bit i set, and the cell's output is complemented
// afterward when OutNeg is set.
type NPNMatch struct {
	Perm    []int
	NegMask int
	OutNeg  bool
}

// rawPattern packs fn's own minterm table into a uint64, bit i the
// function's value at minterm index i.
func rawPattern(fn truthtable.TruthTable) uint64 {
	n := fn.NumVars()
	var pattern uint64
	for m := 0; m < 1<<uint(n); m++ {
		if fn.Get(m) {
			pattern |= 1 << uint(m)
		}
	}
	return pattern
}

// MatchNPN searches for a transform carrying proto onto fn, returning the
// first one found (ties are broken arbitrarily; any transform the search
// finds wires the cell correctly). ok is false when proto and fn are not
// NPN-equivalent or do not share the same arity.
func MatchNPN(fn, proto truthtable.TruthTable) (NPNMatch, bool) {
	n := fn.NumVars()
	if proto.NumVars() != n {
		return NPNMatch{}, false
	}
	target := rawPattern(fn)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var found NPNMatch
	ok := false
	permute(perm, 0, func(p []int) {
		if ok {
			return
		}
		nMasks := 1 << uint(n)
		for negMask := 0; negMask < nMasks; negMask++ {
			if transformPattern(proto, p, negMask, false) == target {
				found = NPNMatch{Perm: append([]int(nil), p...), NegMask: negMask, OutNeg: false}
				ok = true
				return
			}
			if transformPattern(proto, p, negMask, true) == target {
				found = NPNMatch{Perm: append([]int(nil), p...), NegMask: negMask, OutNeg: true}
				ok = true
				return
			}
		}
	})
	return found, ok
}

// permute calls visit once per permutation of perm[k:], by recursive
// swap-and-restore from offset k.
func permute(perm []int, k int, visit func([]int)) {
	if k == len(perm) {
		visit(perm)
		return
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		permute(perm, k+1, visit)
		perm[k], perm[i] = perm[i], perm[k]
	}
}
