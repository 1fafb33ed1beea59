package builder

import (
	"sync"

	"github.com/hqdem/gatesynth/model"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "builder")

// MaxFanin and MaxFanout bound the number of links a single cell may take
// and the number of times a single entry may be referenced, mirroring
// Cell::MaxFanin/Cell::MaxFanout (both 0xffff, a uint16 refcount field).
// AddCell/AddTypedCell and appendRaw's refcount increment enforce these
// as invariant() panics rather than silently wrapping a uint16.
const (
	MaxFanin  = 0xFFFF
	MaxFanout = 0xFFFF
)

// entry is the builder's internal mirror of model.Entry, carrying the
// per-cell bookkeeping (depth, weight, refcount, session stamp) that a
// frozen model.Subnet does not need.
type entry struct {
	typeID model.CellTypeID
	links  []model.Link

	depth     uint32
	weight    float64
	refcount  uint32
	session   uint64
	isOutput  bool
	liveInput bool // true for IN entries; never collected by Make
}

// strashKey is the structural-hash lookup key: a cell's type plus its
// canonicalized fanin links (sorted for symmetric symbols, as-is
// otherwise). Two AddCell calls that produce the same key always yield
// the same entry.
type strashKey struct {
	typeID model.CellTypeID
	links  string // packed links, stable and hashable
}

// IOMap tells Replace/EvaluateReplace which existing builder entries an
// incoming subnet's inputs reuse, and which existing entries must be
// redirected to the incoming subnet's outputs.
type IOMap struct {
	// Inputs[i] is the builder EntryID that rhs input i reuses.
	Inputs []model.EntryID
	// Outputs[i] is the builder EntryID whose fanouts must be redirected
	// to rhs output i's driver.
	Outputs []model.EntryID
}

// Effect is the signed cost delta of a Replace/EvaluateReplace call.
type Effect struct {
	Size  int
	Depth int
}

// BuilderOption configures a SubnetBuilder at construction time, following
// the usual functional-options convention.
type BuilderOption func(*SubnetBuilder)

// WithCatalog threads a specific CellTypeCatalog through the builder
// instead of model.DefaultCatalog. Used by tests that need isolation.
func WithCatalog(cat *model.CellTypeCatalog) BuilderOption {
	return func(b *SubnetBuilder) { b.catalog = cat }
}

// WithValidation enables a model.Subnet.Validate() call inside Make,
// mirroring a reference validator pass.
func WithValidation() BuilderOption {
	return func(b *SubnetBuilder) { b.validate = true }
}

// SubnetBuilder is the mutable arena backing every transformation pass.
// All methods are safe to call from a single owning goroutine; unlike a
// lock-guarded graph type, SubnetBuilder is NOT internally synchronized —
// a builder is exclusively owned by its current transformer, so lock
// overhead on the hot strash path is avoided.
type SubnetBuilder struct {
	catalog *model.CellTypeCatalog

	entries []entry
	strash  map[strashKey]model.EntryID

	fanoutEnabled bool
	fanout        map[model.EntryID][]model.EntryID

	currentSession uint64

	numIn  int
	numOut int

	validate bool

	mu sync.Mutex // guards currentSession inside StartSession and SessionID
}

// NewBuilder creates an empty SubnetBuilder.
func NewBuilder(opts ...BuilderOption) *SubnetBuilder {
	b := &SubnetBuilder{
		catalog: model.DefaultCatalog,
		strash:  make(map[strashKey]model.EntryID),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the current number of arena entries, including dead ones
// not yet swept by Make.
func (b *SubnetBuilder) Len() int { return len(b.entries) }

// NumIn returns the number of primary inputs added so far.
func (b *SubnetBuilder) NumIn() int { return b.numIn }

// NumOut returns the number of primary outputs added so far.
func (b *SubnetBuilder) NumOut() int { return b.numOut }

// Symbol returns the CellSymbol of entry id.
func (b *SubnetBuilder) Symbol(id model.EntryID) model.CellSymbol {
	t := b.catalog.Get(b.entries[id].typeID)
	if t == nil {
		return model.UNDEF
	}
	return t.Symbol
}

// Catalog returns the CellTypeCatalog this builder resolves symbols
// against — techmap needs it to look up a library cell's Impl/Attrs from
// the CellTypeID an entry carries.
func (b *SubnetBuilder) Catalog() *model.CellTypeCatalog { return b.catalog }

// TypeID returns the CellTypeID of entry id — the catalog key a caller
// needs to recover a non-built-in type's Impl/Attrs (Symbol alone collapses
// every UNDEF-symbol cell type to the same value).
func (b *SubnetBuilder) TypeID(id model.EntryID) model.CellTypeID { return b.entries[id].typeID }

// Links returns a copy of entry id's fanin links.
func (b *SubnetBuilder) Links(id model.EntryID) []model.Link {
	out := make([]model.Link, len(b.entries[id].links))
	copy(out, b.entries[id].links)
	return out
}

// Depth returns the cached depth of entry id.
func (b *SubnetBuilder) Depth(id model.EntryID) uint32 { return b.entries[id].depth }

// Refcount returns the live fanout count of entry id.
func (b *SubnetBuilder) Refcount(id model.EntryID) uint32 { return b.entries[id].refcount }

// Weight returns the caller-managed weight of entry id.
func (b *SubnetBuilder) Weight(id model.EntryID) float64 { return b.entries[id].weight }

// SetWeight sets the caller-managed weight of entry id (used by
// power-aware passes).
func (b *SubnetBuilder) SetWeight(id model.EntryID, w float64) { b.entries[id].weight = w }

func (b *SubnetBuilder) invariant(cond bool, msg string) {
	if !cond {
		panic("builder: invariant violated: " + msg)
	}
}
