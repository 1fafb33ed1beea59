package truthtable

// Cube is a product term in positional-cube notation: Lits[i] is 0 for a
// negative literal of variable i, 1 for a positive literal, 2 for a
// variable absent from the cube ("don't care" position).
type Cube struct {
	Lits []int8
}

const (
	litNeg  int8 = 0
	litPos  int8 = 1
	litFree int8 = 2
)

// ISOP extracts an irredundant sum-of-products cover of f, restricted to
// care (pass nil for "every point is care"). This is a cofactor-driven
// recursive cover extraction in the spirit of Minato-Morreale — common
// cubes across both cofactors of a variable are extracted without that
// variable's literal, recursing over the remainder — simplified relative
// to a true BDD-based Minato-Morreale pass in that it does not expand
// cubes into don't-care points beyond what a common-cofactor merge finds
// for free.
func ISOP(f TruthTable, care TruthTable) []Cube {
	on := f
	if care != nil {
		on = f.And(care)
	}
	nvars := on.NumVars()
	prefix := make([]int8, nvars)
	for i := range prefix {
		prefix[i] = litFree
	}
	return isopRec(nvars, 0, on, prefix)
}

func isopRec(nvars, varIdx int, on TruthTable, prefix []int8) []Cube {
	if on.IsZero() {
		return nil
	}
	if varIdx == nvars {
		if on.IsOne() {
			cube := make([]int8, nvars)
			copy(cube, prefix)
			return []Cube{{Lits: cube}}
		}
		return nil
	}

	on0 := cofactor(on, varIdx, false)
	on1 := cofactor(on, varIdx, true)
	common := on0.And(on1)

	commonPrefix := append([]int8(nil), prefix...)
	commonPrefix[varIdx] = litFree
	commonCubes := isopRec(nvars, varIdx+1, common, commonPrefix)

	notCommon := common.Not()
	on0rem := on0.And(notCommon)
	on1rem := on1.And(notCommon)

	negPrefix := append([]int8(nil), prefix...)
	negPrefix[varIdx] = litNeg
	negCubes := isopRec(nvars, varIdx+1, on0rem, negPrefix)

	posPrefix := append([]int8(nil), prefix...)
	posPrefix[varIdx] = litPos
	posCubes := isopRec(nvars, varIdx+1, on1rem, posPrefix)

	out := make([]Cube, 0, len(commonCubes)+len(negCubes)+len(posCubes))
	out = append(out, commonCubes...)
	out = append(out, negCubes...)
	out = append(out, posCubes...)
	return out
}

// cofactor returns the function obtained by fixing variable i to val,
// represented (like every TruthTable here) over the full nvars so it can
// still be combined with tables that do depend on variable i.
func cofactor(t TruthTable, i int, val bool) TruthTable {
	nvars := t.NumVars()
	n := 1 << uint(nvars)
	out := New(nvars)
	bit := 1 << uint(i)
	for m := 0; m < n; m++ {
		forced := m
		if val {
			forced |= bit
		} else {
			forced &^= bit
		}
		if t.Get(forced) {
			out.Set(m, true)
		}
	}
	return out
}

// CubeToTruthTable renders a single cube back into its characteristic
// truth table, the AND of its literals.
func CubeToTruthTable(nvars int, c Cube) TruthTable {
	result := One(nvars)
	for i, lit := range c.Lits {
		switch lit {
		case litNeg:
			result = result.And(Var(nvars, i).Not())
		case litPos:
			result = result.And(Var(nvars, i))
		}
	}
	return result
}

// CoverToTruthTable ORs every cube's characteristic table together.
func CoverToTruthTable(nvars int, cubes []Cube) TruthTable {
	result := Zero(nvars)
	for _, c := range cubes {
		result = result.Or(CubeToTruthTable(nvars, c))
	}
	return result
}
