package transform

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// twoInputOps lists the symbols a two-divisor resubstitution tries; MAJ is
// excluded here since it needs a third operand to mean anything beyond
// AND/OR.
var twoInputOps = []model.CellSymbol{model.AND, model.OR, model.XOR}

// tryTwoResub looks for a pair of divisors and an operator/polarity
// combination whose result equals p's function exactly.
func tryTwoResub(p *resubPivot, divisors []divisor) *resubCandidate {
	for i := 0; i < len(divisors); i++ {
		for j := i + 1; j < len(divisors); j++ {
			if c := tryPair(p, divisors[i], divisors[j]); c != nil {
				return c
			}
		}
	}
	return nil
}

func tryPair(p *resubPivot, a, b divisor) *resubCandidate {
	for _, op := range twoInputOps {
		for mask := 0; mask < 4; mask++ {
			invA := mask&1 != 0
			invB := mask&2 != 0
			ta, tb := a.tt, b.tt
			if invA {
				ta = ta.Not()
			}
			if invB {
				tb = tb.Not()
			}
			if combineTwo(op, ta, tb).Equal(p.f) {
				return &resubCandidate{
					sub:    twoInputSubnet(op, invA, invB),
					inputs: []model.EntryID{a.id, b.id},
				}
			}
		}
	}
	return nil
}

func combineTwo(op model.CellSymbol, a, b truthtable.TruthTable) truthtable.TruthTable {
	switch op {
	case model.OR:
		return a.Or(b)
	case model.XOR:
		return a.Xor(b)
	default:
		return a.And(b)
	}
}

func twoInputSubnet(op model.CellSymbol, invA, invB bool) *model.Subnet {
	b := builder.NewBuilder()
	la := model.NewLink(b.AddInput())
	lb := model.NewLink(b.AddInput())
	if invA {
		la = la.Inv()
	}
	if invB {
		lb = lb.Inv()
	}
	out := b.AddCell(op, la, lb)
	b.AddOutput(model.NewLink(out))
	return b.Make(true)
}
