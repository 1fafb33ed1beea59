package truthtable

// TruthTable is a completely-specified Boolean function of NumVars()
// variables, stored as one bit per minterm (bit i is the function's value
// on the assignment whose binary representation is i, variable 0 the
// least-significant bit). New selects the cheapest backing
// representation: word6 for n<=6, Vector otherwise.
type TruthTable interface {
	NumVars() int
	Get(i int) bool
	Set(i int, v bool)
	Clone() TruthTable

	Not() TruthTable
	And(other TruthTable) TruthTable
	Or(other TruthTable) TruthTable
	Xor(other TruthTable) TruthTable

	IsZero() bool
	IsOne() bool
	Equal(other TruthTable) bool

	String() string
}

// wordThreshold is the variable count above which a table no longer fits
// in a single machine word and must use the bitset-backed Vector form.
const wordThreshold = 6

// New allocates a zero-valued TruthTable over nvars variables.
func New(nvars int) TruthTable {
	if nvars <= wordThreshold {
		return &word6{nvars: nvars}
	}
	return newVector(nvars)
}

// Zero returns the all-0 function of nvars variables.
func Zero(nvars int) TruthTable { return New(nvars) }

// One returns the all-1 function of nvars variables.
func One(nvars int) TruthTable { return Zero(nvars).Not() }

// Var returns the canonical truth table of variable i (0-indexed) among
// nvars total variables: the function that is true exactly when bit i of
// the minterm index is set.
func Var(nvars, i int) TruthTable {
	t := New(nvars)
	n := 1 << uint(nvars)
	for m := 0; m < n; m++ {
		if m&(1<<uint(i)) != 0 {
			t.Set(m, true)
		}
	}
	return t
}

// Majority3 returns the truth table of the 3-input majority function over
// a, b, c, which must share the same variable count.
func Majority3(a, b, c TruthTable) TruthTable {
	return a.And(b).Or(a.And(c)).Or(b.And(c))
}
