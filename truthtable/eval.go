package truthtable

import (
	"errors"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// ErrSequentialEntry indicates an attempt to evaluate a combinational
// truth table through a flip-flop or latch; evaluation only ever covers
// one combinational cone, bounded by sequential elements and leaves.
var ErrSequentialEntry = errors.New("truthtable: cannot evaluate through a sequential entry")

// Evaluate computes the truth table of root as a function of leaves (in
// the given order, leaves[i] bound to variable i), walking b's arena
// topologically and stopping recursion at any leaf. This is the
// workhorse behind every resynthesizer in the synth package: a cut's
// leaves become the function's support, and root is the cut's root.
func Evaluate(b *builder.SubnetBuilder, leaves []model.EntryID, root model.EntryID) (TruthTable, error) {
	nvars := len(leaves)
	varOf := make(map[model.EntryID]int, nvars)
	for i, l := range leaves {
		varOf[l] = i
	}
	memo := make(map[model.EntryID]TruthTable)

	var walk func(id model.EntryID) (TruthTable, error)
	walk = func(id model.EntryID) (TruthTable, error) {
		if tt, ok := memo[id]; ok {
			return tt, nil
		}
		if v, ok := varOf[id]; ok {
			tt := Var(nvars, v)
			memo[id] = tt
			return tt, nil
		}
		sym := b.Symbol(id)
		if sym.IsSequential() {
			return nil, ErrSequentialEntry
		}
		links := b.Links(id)
		operand := func(l model.Link) (TruthTable, error) {
			tt, err := walk(l.Entry)
			if err != nil {
				return nil, err
			}
			if l.Inverted {
				tt = tt.Not()
			}
			return tt, nil
		}

		var result TruthTable
		var err error
		switch sym {
		case model.ZERO:
			result = Zero(nvars)
		case model.ONE:
			result = One(nvars)
		case model.IN:
			// An IN reached that is not in leaves is free — treat it as
			// its own fresh variable is not meaningful here; callers must
			// include every reachable IN in leaves.
			return nil, errInputNotInLeaves
		case model.BUF, model.OUT:
			result, err = operand(links[0])
		case model.NOT:
			result, err = operand(links[0])
			if err == nil {
				result = result.Not()
			}
		case model.AND, model.NAND:
			result, err = foldLinks(links, operand, TruthTable.And, One(nvars))
			if err == nil && sym == model.NAND {
				result = result.Not()
			}
		case model.OR, model.NOR:
			result, err = foldLinks(links, operand, TruthTable.Or, Zero(nvars))
			if err == nil && sym == model.NOR {
				result = result.Not()
			}
		case model.XOR, model.XNOR:
			result, err = foldLinks(links, operand, TruthTable.Xor, Zero(nvars))
			if err == nil && sym == model.XNOR {
				result = result.Not()
			}
		case model.MAJ:
			a, e1 := operand(links[0])
			bb, e2 := operand(links[1])
			c, e3 := operand(links[2])
			if e1 != nil {
				err = e1
			} else if e2 != nil {
				err = e2
			} else if e3 != nil {
				err = e3
			} else {
				result = Majority3(a, bb, c)
			}
		default:
			return nil, ErrSequentialEntry
		}
		if err != nil {
			return nil, err
		}
		memo[id] = result
		return result, nil
	}

	return walk(root)
}

var errInputNotInLeaves = errors.New("truthtable: reached a primary input outside the leaf set")

func foldLinks(
	links []model.Link,
	operand func(model.Link) (TruthTable, error),
	combine func(TruthTable, TruthTable) TruthTable,
	identity TruthTable,
) (TruthTable, error) {
	acc := identity
	for i, l := range links {
		tt, err := operand(l)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			acc = tt
			continue
		}
		acc = combine(acc, tt)
	}
	return acc, nil
}
