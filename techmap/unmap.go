package techmap

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// Unmap rebuilds b with every library-cell entry (any UNDEF-symbol type
// carrying an Impl subnet) inlined back to the primitive cells Impl is
// built from, leaving native builtin cells untouched. It is techmap's
// inverse: Unmap(Techmap(b, lib, crit)) realizes the same function as b
// using only builtin gates again.
func Unmap(b *builder.SubnetBuilder) *builder.SubnetBuilder {
	out := builder.NewBuilder()
	built := make(map[model.EntryID]model.Link, b.Len())

	var recurse func(id model.EntryID) model.Link
	recurse = func(id model.EntryID) model.Link {
		if l, ok := built[id]; ok {
			return l
		}
		var result model.Link
		switch sym := b.Symbol(id); sym {
		case model.IN:
			result = model.NewLink(out.AddInput())
		case model.ZERO:
			result = out.Zero()
		case model.ONE:
			result = out.One()
		case model.OUT:
			driver := b.Links(id)[0]
			drv := recurse(driver.Entry)
			if driver.Inverted {
				drv = drv.Inv()
			}
			out.AddOutput(drv)
			result = model.Link{}
		default:
			links := b.Links(id)
			resolved := make([]model.Link, len(links))
			for i, l := range links {
				rl := recurse(l.Entry)
				if l.Inverted {
					rl = rl.Inv()
				}
				resolved[i] = rl
			}
			if t := b.Catalog().Get(b.TypeID(id)); t != nil && t.Symbol == model.UNDEF && t.Impl != nil {
				outs := spliceImpl(out, t.Impl, resolved)
				result = outs[0]
			} else {
				result = model.NewLink(out.AddCell(sym, resolved...))
			}
		}
		built[id] = result
		return result
	}

	for i := 0; i < b.Len(); i++ {
		if b.Symbol(model.EntryID(i)) == model.OUT {
			recurse(model.EntryID(i))
		}
	}
	return out
}

// spliceImpl re-adds sub's internal cells into dst, binding sub's primary
// inputs to inputs and returning links to sub's primary outputs.
func spliceImpl(dst *builder.SubnetBuilder, sub *model.Subnet, inputs []model.Link) []model.Link {
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
		built[model.EntryID(i)] = model.NewLink(dst.AddCell(sym, links...))
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
