package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// threeInputOps lists the symbols a three-divisor resubstitution tries.
// MAJ is included alongside the associative ops since it is a native
// 3-input primitive in this basis, not just AND/OR/XOR folded twice.
var threeInputOps = []model.CellSymbol{model.AND, model.OR, model.XOR, model.MAJ}

// tryThreeResub looks for a triple of divisors and an operator/polarity
// combination whose result equals p's function exactly.
func tryThreeResub(p *resubPivot, divisors []divisor) *resubCandidate {
	for i := 0; i < len(divisors); i++ {
		for j := i + 1; j < len(divisors); j++ {
			for k := j + 1; k < len(divisors); k++ {
				if c := tryTriple(p, divisors[i], divisors[j], divisors[k]); c != nil {
					return c
				}
			}
		}
	}
	return nil
}

func tryTriple(p *resubPivot, a, b, c divisor) *resubCandidate {
	for _, op := range threeInputOps {
		for mask := 0; mask < 8; mask++ {
			invA := mask&1 != 0
			invB := mask&2 != 0
			invC := mask&4 != 0
			ta, tb, tc := a.tt, b.tt, c.tt
			if invA {
				ta = ta.Not()
			}
			if invB {
				tb = tb.Not()
			}
			if invC {
				tc = tc.Not()
			}
			if combineThree(op, ta, tb, tc).Equal(p.f) {
				return &resubCandidate{
					sub:    threeInputSubnet(op, invA, invB, invC),
					inputs: []model.EntryID{a.id, b.id, c.id},
				}
			}
		}
	}
	return nil
}

func combineThree(op model.CellSymbol, a, b, c truthtable.TruthTable) truthtable.TruthTable {
	switch op {
	case model.OR:
		return a.Or(b).Or(c)
	case model.XOR:
		return a.Xor(b).Xor(c)
	case model.MAJ:
		return truthtable.Majority3(a, b, c)
	default:
		return a.And(b).And(c)
	}
}

func threeInputSubnet(op model.CellSymbol, invA, invB, invC bool) *model.Subnet {
	bld := builder.NewBuilder()
	la := model.NewLink(bld.AddInput())
	lb := model.NewLink(bld.AddInput())
	lc := model.NewLink(bld.AddInput())
	if invA {
		la = la.Inv()
	}
	if invB {
		lb = lb.Inv()
	}
	if invC {
		lc = lc.Inv()
	}
	out := bld.AddCell(op, la, lb, lc)
	bld.AddOutput(model.NewLink(out))
	return bld.Make(true)
}
