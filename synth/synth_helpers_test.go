package synth

import (
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/truthtable"
)

// evalSubnet simulates sub's single output directly, without a live
// builder: sub.Entries is already topologically sorted by Make, so one
// forward pass in entry order suffices.
func evalSubnet(sub *model.Subnet) truthtable.TruthTable {
	nvars := sub.NumIn
	values := make([]truthtable.TruthTable, len(sub.Entries))
	for i := 0; i < sub.NumIn; i++ {
		values[i] = truthtable.Var(nvars, i)
	}

	operand := func(l model.Link) truthtable.TruthTable {
		v := values[l.Entry]
		if l.Inverted {
			return v.Not()
		}
		return v
	}

	firstOut := len(sub.Entries) - sub.NumOut
	for i := sub.NumIn; i < len(sub.Entries); i++ {
		entry := sub.Entries[i]
		sym := sub.Symbol(model.EntryID(i))
		var result truthtable.TruthTable
		switch sym {
		case model.ZERO:
			result = truthtable.Zero(nvars)
		case model.ONE:
			result = truthtable.One(nvars)
		case model.BUF, model.OUT:
			result = operand(entry.Links[0])
		case model.NOT:
			result = operand(entry.Links[0]).Not()
		case model.AND, model.NAND:
			result = operand(entry.Links[0])
			for _, l := range entry.Links[1:] {
				result = result.And(operand(l))
			}
			if sym == model.NAND {
				result = result.Not()
			}
		case model.OR, model.NOR:
			result = operand(entry.Links[0])
			for _, l := range entry.Links[1:] {
				result = result.Or(operand(l))
			}
			if sym == model.NOR {
				result = result.Not()
			}
		case model.XOR, model.XNOR:
			result = operand(entry.Links[0])
			for _, l := range entry.Links[1:] {
				result = result.Xor(operand(l))
			}
			if sym == model.XNOR {
				result = result.Not()
			}
		case model.MAJ:
			result = truthtable.Majority3(operand(entry.Links[0]), operand(entry.Links[1]), operand(entry.Links[2]))
		default:
			panic("evalSubnet: unsupported symbol " + sym.String())
		}
		values[i] = result
	}
	_ = firstOut
	return values[len(sub.Entries)-sub.NumOut]
}

// setBits builds an nvars-variable TruthTable with 1-bits at the given
// minterm indices.
func setBits(nvars int, ones ...int) truthtable.TruthTable {
	t := truthtable.New(nvars)
	for _, m := range ones {
		t.Set(m, true)
	}
	return t
}
