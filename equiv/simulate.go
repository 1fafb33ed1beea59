package equiv

import (
	"errors"

	"github.com/hqdem/gatesynth/model"
)

// ErrSequentialEntry mirrors truthtable.ErrSequentialEntry: simulate only
// walks combinational cones, bounded by flip-flops and latches.
var ErrSequentialEntry = errors.New("equiv: cannot simulate through a sequential entry")

// simulate evaluates sub for one concrete input assignment, returning one
// bool per primary output. Library cells (UNDEF-symbol entries with a
// structural Impl, as techmap produces) are inlined recursively rather
// than rejected, so a checker can compare a premapped subnet against a
// techmapped one without an intervening Unmap.
func simulate(sub *model.Subnet, inputs []bool) ([]bool, error) {
	values := make([]bool, len(sub.Entries))
	for i := 0; i < sub.NumIn; i++ {
		values[i] = inputs[i]
	}

	operand := func(l model.Link) bool {
		v := values[l.Entry]
		if l.Inverted {
			return !v
		}
		return v
	}

	for i := sub.NumIn; i < len(sub.Entries); i++ {
		entry := sub.Entries[i]
		sym := sub.Symbol(model.EntryID(i))
		var result bool
		switch sym {
		case model.ZERO:
			result = false
		case model.ONE:
			result = true
		case model.BUF, model.OUT:
			result = operand(entry.Links[0])
		case model.NOT:
			result = !operand(entry.Links[0])
		case model.AND, model.NAND:
			result = true
			for _, l := range entry.Links {
				result = result && operand(l)
			}
			if sym == model.NAND {
				result = !result
			}
		case model.OR, model.NOR:
			result = false
			for _, l := range entry.Links {
				result = result || operand(l)
			}
			if sym == model.NOR {
				result = !result
			}
		case model.XOR, model.XNOR:
			result = false
			for _, l := range entry.Links {
				result = result != operand(l)
			}
			if sym == model.XNOR {
				result = !result
			}
		case model.MAJ:
			count := 0
			for _, l := range entry.Links {
				if operand(l) {
					count++
				}
			}
			result = count >= 2
		default:
			if sym.IsSequential() {
				return nil, ErrSequentialEntry
			}
			t := sub.Catalog.Get(entry.Type)
			if t == nil || t.Impl == nil {
				return nil, model.ErrUnknownCellType
			}
			implIns := make([]bool, len(entry.Links))
			for j, l := range entry.Links {
				implIns[j] = operand(l)
			}
			outs, err := simulate(t.Impl, implIns)
			if err != nil {
				return nil, err
			}
			result = outs[0]
		}
		values[i] = result
	}

	outs := make([]bool, sub.NumOut)
	firstOut := len(sub.Entries) - sub.NumOut
	for i := 0; i < sub.NumOut; i++ {
		outs[i] = values[firstOut+i]
	}
	return outs, nil
}
