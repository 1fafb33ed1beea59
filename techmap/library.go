package techmap

import (
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/synth"
	"github.com/hqdem/gatesynth/truthtable"
)

// NPNClass identifies a Boolean function up to input permutation, input
// negation, and output negation — the key techmap groups library cells and
// cut functions under so a cut can be matched against every cell
// realizing the same function regardless of pin order or polarity.
type NPNClass struct {
	NumVars int
	// Pattern is the lexicographically smallest truth table (as a packed
	// bit pattern over NumVars variables) reachable from the class's
	// members by permuting/negating inputs and negating the output.
	Pattern uint64
}

// NLDMPoint is one (inputTransition, outputCap) corner of a liberty NLDM
// lookup table.
type NLDMPoint struct {
	InputTransition float64
	OutputCap       float64
}

// NLDMTable holds a cell pin's non-linear delay model: delay and output
// transition sampled at a 2-D grid of (input transition, output
// capacitance) corners, interpolated bilinearly for an arbitrary query
// point. A table needs at least a 2x2 grid (two distinct transition
// breakpoints times two distinct capacitance breakpoints) to interpolate;
// Interpolate clamps to the nearest edge outside that range.
type NLDMTable struct {
	Transitions []float64   // sorted ascending, the table's X axis
	Caps        []float64   // sorted ascending, the table's Y axis
	Delay       [][]float64 // Delay[i][j] at (Transitions[i], Caps[j])
	Slew        [][]float64 // output transition at the same grid point
}

// Interpolate returns the (delay, transition) bilinearly interpolated at
// (inputTransition, outputCap), using the standard four-corner formula
// p = ((x2-x)/(x2-x1))*q11*((y2-y)/(y2-y1)) + ... summed over the four
// corners surrounding the query point.
func (t NLDMTable) Interpolate(inputTransition, outputCap float64) (delay, transition float64) {
	i0, i1, fx := bracket(t.Transitions, inputTransition)
	j0, j1, fy := bracket(t.Caps, outputCap)

	delay = bilinear(t.Delay, i0, i1, fx, j0, j1, fy)
	transition = bilinear(t.Slew, i0, i1, fx, j0, j1, fy)
	return delay, transition
}

// bracket finds the two axis indices surrounding x and the fractional
// position (0 at axis[lo], 1 at axis[hi]) between them, clamping to the
// table's edges when x falls outside the sampled range.
func bracket(axis []float64, x float64) (lo, hi int, frac float64) {
	if len(axis) == 1 {
		return 0, 0, 0
	}
	if x <= axis[0] {
		return 0, 1, 0
	}
	if x >= axis[len(axis)-1] {
		return len(axis) - 2, len(axis) - 1, 1
	}
	for i := 0; i < len(axis)-1; i++ {
		if x >= axis[i] && x <= axis[i+1] {
			span := axis[i+1] - axis[i]
			if span == 0 {
				return i, i + 1, 0
			}
			return i, i + 1, (x - axis[i]) / span
		}
	}
	return len(axis) - 2, len(axis) - 1, 1
}

func bilinear(grid [][]float64, i0, i1 int, fx float64, j0, j1 int, fy float64) float64 {
	q11 := grid[i0][j0]
	q12 := grid[i0][j1]
	q21 := grid[i1][j0]
	q22 := grid[i1][j1]
	top := q11*(1-fy) + q12*fy
	bottom := q21*(1-fy) + q22*fy
	return top*(1-fx) + bottom*fx
}

// LibCell is one cell entry of a technology library: its name, the
// function it realizes (both as a truth table and, structurally, as
// Impl), the NPN class that function belongs to, and one NLDM table per
// input pin (pin i's table governs the delay/transition of propagating a
// transition from pin i to the cell's output).
type LibCell struct {
	Name     string
	Function truthtable.TruthTable
	Class    NPNClass
	// Impl is a structural realization of Function over AND/OR/NOT,
	// registered into a builder's catalog as this cell's CellType.Impl so
	// Unmap can inline a mapped cell back to primitives.
	Impl *model.Subnet
	Pins []NLDMTable
	Area float64
}

// NewLibCell builds a LibCell, deriving its NPN class and a structural
// Impl from fn so callers never have to canonicalize or synthesize a
// prototype implementation by hand.
func NewLibCell(name string, fn truthtable.TruthTable, pins []NLDMTable, area float64) LibCell {
	impl := (synth.ISOPSynth{}).Synthesize(fn, truthtable.One(fn.NumVars()), 2)
	return LibCell{Name: name, Function: fn, Class: CanonicalizeNPN(fn), Impl: impl, Pins: pins, Area: area}
}

// Library is the flat set of cells a liberty parser would have populated;
// techmap only ever reads it, grouping cells by NPNClass for cut matching.
type Library struct {
	Cells []LibCell
}

// byClass indexes Cells by NPNClass.Pattern for O(1) candidate lookup
// during the techmapper's DP sweep.
func (l *Library) byClass() map[uint64][]LibCell {
	idx := make(map[uint64][]LibCell, len(l.Cells))
	for _, c := range l.Cells {
		idx[c.Class.Pattern] = append(idx[c.Class.Pattern], c)
	}
	return idx
}
