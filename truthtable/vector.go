package truthtable

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector backs truth tables of more than 6 variables with a packed bit
// vector, since a plain uint64 can no longer hold one bit per minterm.
type Vector struct {
	nvars int
	bits  *bitset.BitSet
}

func newVector(nvars int) *Vector {
	return &Vector{nvars: nvars, bits: bitset.New(uint(1 << uint(nvars)))}
}

func (v *Vector) NumVars() int { return v.nvars }

func (v *Vector) Get(i int) bool { return v.bits.Test(uint(i)) }

func (v *Vector) Set(i int, val bool) {
	if val {
		v.bits.Set(uint(i))
	} else {
		v.bits.Clear(uint(i))
	}
}

func (v *Vector) Clone() TruthTable {
	return &Vector{nvars: v.nvars, bits: v.bits.Clone()}
}

func (v *Vector) Not() TruthTable {
	n := uint(1 << uint(v.nvars))
	return &Vector{nvars: v.nvars, bits: full(n).SymmetricDifference(v.bits)}
}

func full(n uint) *bitset.BitSet {
	b := bitset.New(n)
	for i := uint(0); i < n; i++ {
		b.Set(i)
	}
	return b
}

func (v *Vector) other(t TruthTable) *Vector {
	o, ok := t.(*Vector)
	if !ok || o.nvars != v.nvars {
		panic(ErrVarCountMismatch)
	}
	return o
}

func (v *Vector) And(t TruthTable) TruthTable {
	o := v.other(t)
	return &Vector{nvars: v.nvars, bits: v.bits.Intersection(o.bits)}
}

func (v *Vector) Or(t TruthTable) TruthTable {
	o := v.other(t)
	return &Vector{nvars: v.nvars, bits: v.bits.Union(o.bits)}
}

func (v *Vector) Xor(t TruthTable) TruthTable {
	o := v.other(t)
	return &Vector{nvars: v.nvars, bits: v.bits.SymmetricDifference(o.bits)}
}

func (v *Vector) IsZero() bool { return v.bits.None() }

func (v *Vector) IsOne() bool { return v.bits.Count() == uint(1<<uint(v.nvars)) }

func (v *Vector) Equal(t TruthTable) bool {
	o, ok := t.(*Vector)
	if !ok || o.nvars != v.nvars {
		return false
	}
	return v.bits.Equal(o.bits)
}

func (v *Vector) String() string {
	n := uint(1 << uint(v.nvars))
	var sb strings.Builder
	nibble := byte(0)
	count := 0
	var out []byte
	for i := n; i > 0; i-- {
		bit := i - 1
		if v.bits.Test(bit) {
			nibble |= 1 << uint(3-count)
		}
		count++
		if count == 4 {
			out = append(out, hexDigit(nibble))
			nibble, count = 0, 0
		}
	}
	if count > 0 {
		out = append(out, hexDigit(nibble))
	}
	for _, c := range out {
		sb.WriteByte(c)
	}
	return sb.String()
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + (b - 10)
}
