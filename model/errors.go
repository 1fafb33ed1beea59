// errors.go — sentinel errors for the model package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Construction errors that indicate a caller bug (bad arity,
// non-topological link) are programmer errors and panic instead.
package model

import "errors"

// ErrUnknownCellType indicates a CellTypeID with no catalog entry.
var ErrUnknownCellType = errors.New("model: unknown cell type")

// ErrNonTopological indicates a Subnet whose links violate the topological
// invariant (every link must reference a strictly earlier entry).
var ErrNonTopological = errors.New("model: non-topological link")

// ErrArityMismatch indicates a cell whose declared arity does not match
// its actual fanin count.
var ErrArityMismatch = errors.New("model: arity mismatch")

// ErrDanglingBuf indicates a single-fanin, non-inverting BUF that survives
// cleanup without driving an OUT.
var ErrDanglingBuf = errors.New("model: dangling non-inverting BUF")
