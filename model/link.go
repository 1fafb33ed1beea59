package model

// EntryID indexes an entry inside a Subnet or a SubnetBuilder's arena.
// Entries are addressed by position, never by pointer, so that the arena
// can live in one packed slice.
type EntryID uint32

// Link references a driver: the entry that produces a value, which output
// port of that entry to read (almost always 0 — multi-output cells are
// rare in this model), and whether the value is read inverted. All three
// fields pack into 32 bits so a Link costs exactly one arena slot.
type Link struct {
	Entry    EntryID
	Port     uint8
	Inverted bool
}

// NewLink builds a non-inverting link to port 0 of entry e, the overwhelming
// common case.
func NewLink(e EntryID) Link { return Link{Entry: e} }

// Inv returns a copy of the link with its polarity flipped. Double
// inversion cancels, matching the builder's BUF-fusion rule.
func (l Link) Inv() Link {
	l.Inverted = !l.Inverted
	return l
}

// Packed encodes the link into a single uint32: entry in the high bits,
// port and the inversion flag in the low byte. Used by the structural
// hash key and by the arena's debug dump.
func (l Link) Packed() uint32 {
	v := uint32(l.Entry) << 9
	v |= uint32(l.Port&0x7f) << 1
	if l.Inverted {
		v |= 1
	}
	return v
}

// UnpackLink is the inverse of Link.Packed.
func UnpackLink(v uint32) Link {
	return Link{
		Entry:    EntryID(v >> 9),
		Port:     uint8((v >> 1) & 0x7f),
		Inverted: v&1 != 0,
	}
}
