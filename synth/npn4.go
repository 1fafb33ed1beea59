package synth

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// npnTransform is one member of the 4-variable NP(N) group used to reduce
// a function to its canonical class: permute the four inputs, optionally
// negate each, and optionally negate the output.
type npnTransform struct {
	perm   [4]int
	inNeg  [4]bool
	outNeg bool
}

var npn4Perms = permutations4()

func permutations4() [][4]int {
	var out [][4]int
	idx := [4]int{0, 1, 2, 3}
	var rec func(k int)
	rec = func(k int) {
		if k == 4 {
			out = append(out, idx)
			return
		}
		for i := k; i < 4; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)
	return out
}

// applyNPN computes the truth table of g(x) = f(y) xor outNeg, where
// y[perm[i]] = x[i] xor inNeg[i], as a packed 16-bit table over 4
// variables.
func applyNPN(tt uint16, tr npnTransform) uint16 {
	var out uint16
	for x := 0; x < 16; x++ {
		y := 0
		for i := 0; i < 4; i++ {
			bit := (x >> uint(i)) & 1
			if tr.inNeg[i] {
				bit ^= 1
			}
			y |= bit << uint(tr.perm[i])
		}
		bitVal := (tt >> uint(y)) & 1
		if tr.outNeg {
			bitVal ^= 1
		}
		out |= bitVal << uint(x)
	}
	return out
}

// canonicalizeNPN4 finds, by brute force over all 768 group elements, the
// lexicographically smallest truth table reachable from tt and the
// transform that reaches it.
func canonicalizeNPN4(tt uint16) (uint16, npnTransform) {
	best := tt
	bestTr := npnTransform{perm: [4]int{0, 1, 2, 3}}
	for _, perm := range npn4Perms {
		for mask := 0; mask < 16; mask++ {
			var inNeg [4]bool
			for i := 0; i < 4; i++ {
				inNeg[i] = mask&(1<<uint(i)) != 0
			}
			for _, outNeg := range [2]bool{false, true} {
				tr := npnTransform{perm: perm, inNeg: inNeg, outNeg: outNeg}
				candidate := applyNPN(tt, tr)
				if candidate < best {
					best = candidate
					bestTr = tr
				}
			}
		}
	}
	return best, bestTr
}

var npn4Database map[uint16]*model.Subnet

func init() {
	npn4Database = make(map[uint16]*model.Subnet)
	seen := make(map[uint16]bool)
	for tt := 0; tt < 1<<16; tt++ {
		canon, _ := canonicalizeNPN4(uint16(tt))
		if seen[canon] {
			continue
		}
		seen[canon] = true
		npn4Database[canon] = buildNPN4PrimeNode(canon)
	}
	log.WithField("classes", len(npn4Database)).Info("NPN4 database built")
}

func buildNPN4PrimeNode(tt uint16) *model.Subnet {
	f := truthtable.New(4)
	for m := 0; m < 16; m++ {
		if tt&(1<<uint(m)) != 0 {
			f.Set(m, true)
		}
	}
	if sub := (AkersSynth{}).Synthesize(f, nil, 3); sub != nil {
		return sub
	}
	return (ISOPSynth{}).Synthesize(f, nil, 3)
}

// NPN4Synth recognizes 4-variable functions by canonicalizing them into
// one of the 222 NPN-equivalence classes and retrieving a precomputed
// prime node for the class, spliced back with the permutation and
// negations that map the canonical form back to the original function.
// It only applies to functions of exactly 4 variables; Synthesize returns
// nil otherwise.
type NPN4Synth struct{}

func (NPN4Synth) Synthesize(f, care truthtable.TruthTable, maxArity int) *model.Subnet {
	if f.NumVars() != 4 {
		return nil
	}
	filled := fillDontCares(f, care)
	var tt uint16
	for m, v := range filled {
		if v {
			tt |= 1 << uint(m)
		}
	}

	canon, fwd := canonicalizeNPN4(tt)
	proto, ok := npn4Database[canon]
	if !ok {
		return nil
	}

	b := builder.NewBuilder()
	rawInputs := make([]model.Link, 4)
	for i := 0; i < 4; i++ {
		rawInputs[i] = model.NewLink(b.AddInput())
	}

	// canonInputs[i] feeds the i-th input of the canonical prime node:
	// it is rawInputs[fwd.perm[i]], negated by fwd.inNeg[i], reapplying
	// the recorded forward transform rather than its inverse.
	canonInputs := make([]model.Link, 4)
	for i := 0; i < 4; i++ {
		lit := rawInputs[fwd.perm[i]]
		if fwd.inNeg[i] {
			lit = lit.Inv()
		}
		canonInputs[i] = lit
	}

	outs := spliceSubnet(b, proto, canonInputs)
	out := outs[0]
	if fwd.outNeg {
		out = out.Inv()
	}
	b.AddOutput(out)
	return b.Make(true)
}

// spliceSubnet re-adds sub's internal cells into b, binding sub's primary
// inputs to inputs and returning links to sub's primary outputs.
func spliceSubnet(b *builder.SubnetBuilder, sub *model.Subnet, inputs []model.Link) []model.Link {
	built := make(map[model.EntryID]model.Link, len(sub.Entries))
	for i := 0; i < sub.NumIn; i++ {
		built[model.EntryID(i)] = inputs[i]
	}

	firstOut := len(sub.Entries) - sub.NumOut
	for i := sub.NumIn; i < firstOut; i++ {
		entry := sub.Entries[i]
		sym := sub.Symbol(model.EntryID(i))
		links := make([]model.Link, len(entry.Links))
		for j, l := range entry.Links {
			src := built[l.Entry]
			if l.Inverted {
				src = src.Inv()
			}
			links[j] = src
		}
		id := b.AddCell(sym, links...)
		built[model.EntryID(i)] = model.NewLink(id)
	}

	outs := make([]model.Link, sub.NumOut)
	for i := 0; i < sub.NumOut; i++ {
		entry := sub.Entries[firstOut+i]
		l := entry.Links[0]
		src := built[l.Entry]
		if l.Inverted {
			src = src.Inv()
		}
		outs[i] = src
	}
	return outs
}
