package cut

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

// MFFC returns the maximum fanout-free cone rooted at root: every entry
// that becomes dead once root (and transitively, every entry that only
// root kept alive) is removed, stopping at any entry in leaves or at a
// primary input/constant. It does not mutate b — refcounts are tracked
// in a local copy seeded lazily from b.Refcount, the standard two-pass
// node-deref trick without the second (re-ref) pass, since nothing here
// is actually removed.
func MFFC(b *builder.SubnetBuilder, root model.EntryID, leaves []model.EntryID) []model.EntryID {
	boundary := make(map[model.EntryID]bool, len(leaves))
	for _, l := range leaves {
		boundary[l] = true
	}

	localRef := make(map[model.EntryID]int)
	refOf := func(id model.EntryID) int {
		if v, ok := localRef[id]; ok {
			return v
		}
		v := int(b.Refcount(id))
		localRef[id] = v
		return v
	}

	cone := []model.EntryID{root}
	var deref func(id model.EntryID)
	deref = func(id model.EntryID) {
		for _, l := range b.Links(id) {
			if boundary[l.Entry] {
				continue
			}
			sym := b.Symbol(l.Entry)
			if sym == model.IN || sym.IsConst() || sym.IsSequential() {
				continue
			}
			localRef[l.Entry] = refOf(l.Entry) - 1
			if localRef[l.Entry] == 0 {
				cone = append(cone, l.Entry)
				deref(l.Entry)
			}
		}
	}
	deref(root)
	return cone
}
