package techmap

import (
	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/transform"
	"github.com/hqdem/gatesynth/truthtable"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "techmap")

// nominalTransition and nominalCap are the NLDM query point used when the
// arena carries no wire-load estimate of its own; every delay figure
// techmap reports is relative to this fixed operating point.
const (
	nominalTransition = 1.0
	nominalCap        = 1.0
)

// mapping is the chosen cut/cell/wiring for one source entry, kept
// alongside the cost it was selected for so later entries can fold a
// fanin's delay into their own arrival time.
type mapping struct {
	leaves []model.EntryID
	cell   LibCell
	wiring NPNMatch
	cost   transform.Cost
}

// Techmap covers b's combinational logic with cells from lib, choosing
// for every internal entry the lowest-cost cut whose function matches a
// library cell under crit, and returns a freshly built network with each
// covered entry replaced by a builder.AddTypedCell splice of that cell.
// Entries no cut could match (no library cell realizes their function at
// any cut size tried) are left as their original builtin gate. b itself
// is never mutated.
func Techmap(b *builder.SubnetBuilder, lib *Library, crit transform.Criterion) *builder.SubnetBuilder {
	extractor := cut.NewExtractor(b, cut.WithMaxLeaves(maxNPNVars))
	index := lib.byClass()

	chosen := make(map[model.EntryID]mapping, b.Len())
	arrival := make(map[model.EntryID]float64, b.Len())

	for i := 0; i < b.Len(); i++ {
		id := model.EntryID(i)
		sym := b.Symbol(id)
		if sym == model.IN || sym == model.ZERO || sym == model.ONE {
			arrival[id] = 0
			continue
		}
		if sym == model.OUT || sym.IsSequential() {
			continue
		}

		best, ok := bestMapping(b, extractor, index, id, arrival, crit)
		if ok {
			chosen[id] = best
			arrival[id] = best.cost.Delay
			continue
		}
		// no library cell covers this entry at any cut; it keeps its
		// native form, so its arrival is its fanins' plus one nominal
		// gate delay.
		a := 0.0
		for _, l := range b.Links(id) {
			if fa := arrival[l.Entry]; fa > a {
				a = fa
			}
		}
		arrival[id] = a + 1
	}

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
			drvLink := recurse(driver.Entry)
			if driver.Inverted {
				drvLink = drvLink.Inv()
			}
			out.AddOutput(drvLink)
			result = model.Link{}
		default:
			if m, ok := chosen[id]; ok {
				leafLinks := make([]model.Link, len(m.leaves))
				for i, leaf := range m.leaves {
					leafLinks[i] = recurse(leaf)
				}
				result = spliceLibCell(out, m, leafLinks)
			} else {
				links := b.Links(id)
				resolved := make([]model.Link, len(links))
				for i, l := range links {
					rl := recurse(l.Entry)
					if l.Inverted {
						rl = rl.Inv()
					}
					resolved[i] = rl
				}
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

	log.WithField("cells_mapped", len(chosen)).Info("technology mapping complete")
	return out
}

// bestMapping scans id's cuts for the cheapest library cell match,
// resolving ties by whichever Criterion.Indicator crit favors first and
// then by raw delay.
func bestMapping(b *builder.SubnetBuilder, extractor *cut.CutExtractor, index map[uint64][]LibCell, id model.EntryID, arrival map[model.EntryID]float64, crit transform.Criterion) (mapping, bool) {
	var best mapping
	have := false

	for _, c := range extractor.Cuts(id) {
		if len(c.Leaves) == 1 && c.Leaves[0] == id {
			continue
		}
		fn, err := truthtable.Evaluate(b, c.Leaves, id)
		if err != nil {
			continue
		}
		class := CanonicalizeNPN(fn)
		for _, cell := range index[class.Pattern] {
			if len(cell.Pins) != len(c.Leaves) {
				continue
			}
			wiring, ok := MatchNPN(fn, cell.Function)
			if !ok {
				continue
			}
			faninArrival := 0.0
			for _, leaf := range c.Leaves {
				if a := arrival[leaf]; a > faninArrival {
					faninArrival = a
				}
			}
			delay, _ := cell.Pins[0].Interpolate(nominalTransition, nominalCap)
			cand := mapping{
				leaves: append([]model.EntryID(nil), c.Leaves...),
				cell:   cell,
				wiring: wiring,
				cost: transform.Cost{
					Size:  1,
					Depth: float64(b.Depth(id)),
					Area:  cell.Area,
					Delay: faninArrival + delay,
				},
			}
			if !crit.Satisfies(cand.cost) {
				continue
			}
			ci, bi := cand.cost.Get(crit.Indicator), best.cost.Get(crit.Indicator)
			if !have || ci < bi || (ci == bi && cand.cost.Delay < best.cost.Delay) {
				best = cand
				have = true
			}
		}
	}
	return best, have
}

// spliceLibCell splices m's chosen library cell into out given
// leafLinks[i], the already-built link for m.leaves[i], wiring each cell
// pin via m.wiring (the transform bestMapping's MatchNPN call recovered:
// pin m.wiring.Perm[i] is driven by leafLinks[i], complemented first when
// m.wiring.NegMask has bit i set), and registers the cell's CellType in
// out's catalog on first use.
func spliceLibCell(out *builder.SubnetBuilder, m mapping, leafLinks []model.Link) model.Link {
	typeID := out.Catalog().RegisterUserType(m.cell.Name, m.cell.Impl, model.Attrs{
		Area:   m.cell.Area,
		IsCell: true,
	})

	pins := make([]model.Link, len(leafLinks))
	for i, link := range leafLinks {
		if m.wiring.NegMask&(1<<uint(i)) != 0 {
			link = link.Inv()
		}
		pins[m.wiring.Perm[i]] = link
	}

	result := model.NewLink(out.AddTypedCell(typeID, pins...))
	if m.wiring.OutNeg {
		result = result.Inv()
	}
	return result
}
