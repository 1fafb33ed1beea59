package shell

import "github.com/pkg/errors"

// Exit codes cmd/gatesynth maps command results onto. Programmer errors
// panic and are never mapped here at all.
const (
	ExitSuccess    = 0
	ExitInputError = 1
	ExitLECUnknown = 2
)

// ErrNoDesign indicates a verb that operates on the current design was
// invoked before any design was loaded.
var ErrNoDesign = errors.New("shell: no design loaded")

// ErrUnknownSubnet indicates a verb named a subnet the current design
// does not contain.
var ErrUnknownSubnet = errors.New("shell: unknown subnet")

// ErrLibraryNotLoaded indicates techmap was invoked before a technology
// library was attached to the current design.
var ErrLibraryNotLoaded = errors.New("shell: no technology library loaded")

// ErrExternalFrontend indicates a verb whose real implementation lives
// outside this module — only the seam is defined here.
var ErrExternalFrontend = errors.New("shell: this frontend is an external collaborator, not implemented in-tree")
