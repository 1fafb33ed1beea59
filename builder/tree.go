package builder

import "github.com/hqdem/gatesynth/model"

// AddCellTree builds a balanced tree of sym cells over links, where each
// individual cell takes at most maxArity inputs. This is how wide
// symmetric gates (a 9-input AND, say) reach a techmapping library whose
// largest cell is 2- or 3-input: AddCell itself accepts any arity, but a
// library cell cannot, so callers bound for techmap reduce through
// AddCellTree first. maxArity must be >= 2.
func (b *SubnetBuilder) AddCellTree(sym model.CellSymbol, links []model.Link, maxArity int) model.EntryID {
	b.invariant(maxArity >= 2, "AddCellTree requires maxArity >= 2")
	b.invariant(len(links) > 0, "AddCellTree requires at least one link")
	if len(links) == 1 {
		return b.AddCell(model.BUF, links[0])
	}

	level := make([]model.Link, len(links))
	copy(level, links)
	for len(level) > 1 {
		var next []model.Link
		for i := 0; i < len(level); i += maxArity {
			end := i + maxArity
			if end > len(level) {
				end = len(level)
			}
			chunk := level[i:end]
			if len(chunk) == 1 {
				next = append(next, chunk[0])
				continue
			}
			id := b.AddCell(sym, chunk...)
			next = append(next, model.NewLink(id))
		}
		level = next
	}
	return level[0].Entry
}

// RecurseStop decides, for AddCellRecursively, whether a link should be
// treated as a leaf (stop recursing) or expanded further by calling back
// into the supplied builder function.
type RecurseStop func(link model.Link, depth int) bool

// AddCellRecursively builds a cell of symbol sym over the leaves produced
// by repeatedly splitting links into pairs until stop reports true,
// mirroring the recursive kernel/co-kernel tree that the algebraic
// factoring resynthesizer (synth package) emits. Unlike AddCellTree's
// fixed-width chunking, this always splits binary and lets stop decide
// the recursion depth per branch.
func (b *SubnetBuilder) AddCellRecursively(sym model.CellSymbol, links []model.Link, stop RecurseStop) model.EntryID {
	var rec func(ls []model.Link, depth int) model.Link
	rec = func(ls []model.Link, depth int) model.Link {
		if len(ls) == 1 {
			return ls[0]
		}
		if stop != nil && allStop(ls, depth, stop) {
			return model.NewLink(b.AddCell(sym, ls...))
		}
		mid := len(ls) / 2
		left := rec(ls[:mid], depth+1)
		right := rec(ls[mid:], depth+1)
		return model.NewLink(b.AddCell(sym, left, right))
	}
	return rec(links, 0).Entry
}

func allStop(links []model.Link, depth int, stop RecurseStop) bool {
	for _, l := range links {
		if !stop(l, depth) {
			return false
		}
	}
	return true
}
