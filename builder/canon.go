package builder

import (
	"sort"

	"github.com/hqdem/gatesynth/model"
)

// canonicalizeLinks sorts a symmetric cell's fanin links into a stable
// order (by packed representation) so that e.g. AND(a,b) and AND(b,a)
// strash to the same entry. Asymmetric cells keep caller-supplied order.
func canonicalizeLinks(sym model.CellSymbol, links []model.Link) []model.Link {
	out := make([]model.Link, len(links))
	copy(out, links)
	if sym.IsSymmetric() {
		sort.Slice(out, func(i, j int) bool { return out[i].Packed() < out[j].Packed() })
	}
	return out
}

// linksKey renders a canonicalized link slice into a stable string usable
// as a strashKey field.
func linksKey(links []model.Link) string {
	buf := make([]byte, 0, len(links)*4)
	for _, l := range links {
		p := l.Packed()
		buf = append(buf, byte(p>>24), byte(p>>16), byte(p>>8), byte(p))
	}
	return string(buf)
}

func (b *SubnetBuilder) lookupStrash(typeID model.CellTypeID, canon []model.Link) (model.EntryID, bool) {
	key := strashKey{typeID: typeID, links: linksKey(canon)}
	id, ok := b.strash[key]
	return id, ok
}

func (b *SubnetBuilder) storeStrash(typeID model.CellTypeID, canon []model.Link, id model.EntryID) {
	key := strashKey{typeID: typeID, links: linksKey(canon)}
	b.strash[key] = id
}
