package model

import "fmt"

// Entry is one slot of a Subnet's arena: the cell's type and its fanin
// links.
type Entry struct {
	Type  CellTypeID
	Links []Link
}

// InPlaceLinks documents the typical small fanin count (most cells in
// practice take 5 or fewer inputs); Go slices need no packed-array
// overflow scheme, so this is advisory only, used by callers sizing
// preallocated buffers.
const InPlaceLinks = 5

// Subnet is the immutable, canonical post-construction representation of
// a Boolean network: inputs first, internal cells in topological order,
// outputs last. Obtainable only from SubnetBuilder.Make.
type Subnet struct {
	Catalog *CellTypeCatalog
	Entries []Entry

	NumIn  int
	NumOut int

	// TechMapped marks a subnet in which no inverters survive and only
	// library CellTypes (Attrs.IsCell) appear. Make leaves it false and
	// Techmap does not set it; nothing in this module sets it.
	TechMapped bool
}

// Symbol returns the CellSymbol of entry i.
func (s *Subnet) Symbol(i EntryID) CellSymbol {
	t := s.Catalog.Get(s.Entries[i].Type)
	if t == nil {
		return UNDEF
	}
	return t.Symbol
}

// Inputs returns the EntryIDs of the subnet's primary inputs, entries
// [0, NumIn).
func (s *Subnet) Inputs() []EntryID {
	ids := make([]EntryID, s.NumIn)
	for i := range ids {
		ids[i] = EntryID(i)
	}
	return ids
}

// Outputs returns the EntryIDs of the subnet's primary outputs, the last
// NumOut entries.
func (s *Subnet) Outputs() []EntryID {
	n := len(s.Entries)
	ids := make([]EntryID, s.NumOut)
	for i := range ids {
		ids[i] = EntryID(n - s.NumOut + i)
	}
	return ids
}

// String renders a compact topological dump, useful in test failures and
// the shell's write_debug command.
func (s *Subnet) String() string {
	out := ""
	for i, e := range s.Entries {
		sym := s.Symbol(EntryID(i))
		out += fmt.Sprintf("%3d: %-6s", i, sym)
		for _, l := range e.Links {
			if l.Inverted {
				out += fmt.Sprintf(" ~%d", l.Entry)
			} else {
				out += fmt.Sprintf(" %d", l.Entry)
			}
		}
		out += "\n"
	}
	return out
}

// Validate checks topological ordering, arity match, and the
// dangling-BUF rule. It is invoked optionally by builder.SubnetBuilder.Make
// when built WithValidation().
func (s *Subnet) Validate() error {
	for i, e := range s.Entries {
		for _, l := range e.Links {
			if int(l.Entry) >= i {
				return fmt.Errorf("%w: entry %d links to %d", ErrNonTopological, i, l.Entry)
			}
		}
		sym := s.Symbol(EntryID(i))
		if n, ok := sym.FixedArity(); ok && n != len(e.Links) {
			// OUT may carry exactly one link regardless of symbol table;
			// variable-arity symbols (AND/OR/XOR family) are exempt above.
			if !(sym == OUT && len(e.Links) == 1) {
				return fmt.Errorf("%w: entry %d (%s) wants %d links, has %d",
					ErrArityMismatch, i, sym, n, len(e.Links))
			}
		}
		if sym == BUF && len(e.Links) == 1 && !e.Links[0].Inverted {
			if !s.drivesOutput(EntryID(i)) {
				return fmt.Errorf("%w: entry %d", ErrDanglingBuf, i)
			}
		}
	}
	return nil
}

func (s *Subnet) drivesOutput(id EntryID) bool {
	for _, o := range s.Outputs() {
		for _, l := range s.Entries[o].Links {
			if l.Entry == id {
				return true
			}
		}
	}
	return false
}
