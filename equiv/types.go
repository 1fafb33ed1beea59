package equiv

import (
	"errors"

	"github.com/hqdem/gatesynth/model"
)

// ErrSignatureMismatch indicates the two subnets being compared do not
// even share an input/output count, so no simulation can settle the
// question either way.
var ErrSignatureMismatch = errors.New("equiv: subnets have different numbers of inputs or outputs")

// Result is the outcome of an equivalence check.
type Result int

const (
	Equal Result = iota
	NotEqual
	Unknown
)

// String renders the outcome the way stat_design / lec print it.
func (r Result) String() string {
	switch r {
	case Equal:
		return "equal"
	case NotEqual:
		return "not equal"
	default:
		return "unknown"
	}
}

// Checker decides whether two combinational subnets realize the same
// Boolean function. A real SAT- or BDD-backed implementation is an
// external collaborator; SimChecker is the in-tree default.
type Checker interface {
	Equiv(a, b *model.Subnet) (Result, error)
}
