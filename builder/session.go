package builder

import "github.com/hqdem/gatesynth/model"

// StartSession advances the builder's monotonic session counter and
// returns its new value. An algorithm that needs a scratch "visited" mark
// over entries calls StartSession once and then MarkEntry/Visited per
// entry, instead of
// allocating and zeroing a fresh bitmap every pass — the same amortized
// trick graph traversal code typically uses for visited epochs.
func (b *SubnetBuilder) StartSession() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentSession++
	return b.currentSession
}

// SessionID returns the builder's current session stamp without
// advancing it.
func (b *SubnetBuilder) SessionID() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentSession
}

// MarkEntry stamps entry id with session, the value most recently
// returned by StartSession.
func (b *SubnetBuilder) MarkEntry(id model.EntryID, session uint64) {
	b.entries[id].session = session
}

// Visited reports whether entry id is stamped with the builder's current
// session.
func (b *SubnetBuilder) Visited(id model.EntryID) bool {
	return b.entries[id].session == b.currentSession
}

// EnableFanout builds (if not already built) the reverse-adjacency index
// used by Fanout. Disabled by default since most passes only need
// fanin traversal; enabling it costs one slice append per AddCell call
// from then on.
func (b *SubnetBuilder) EnableFanout() {
	if b.fanoutEnabled {
		return
	}
	b.fanout = make(map[model.EntryID][]model.EntryID, len(b.entries))
	for id, e := range b.entries {
		for _, l := range e.links {
			b.fanout[l.Entry] = append(b.fanout[l.Entry], model.EntryID(id))
		}
	}
	b.fanoutEnabled = true
}

// Fanout returns the entries that reference id as a fanin. Returns
// ErrFanoutDisabled if EnableFanout was never called.
func (b *SubnetBuilder) Fanout(id model.EntryID) ([]model.EntryID, error) {
	if !b.fanoutEnabled {
		return nil, ErrFanoutDisabled
	}
	return b.fanout[id], nil
}
