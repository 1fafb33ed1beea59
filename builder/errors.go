// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict, matching this module's usual
// convention):
//   - Only sentinel variables are exposed.
//   - Callers branch with errors.Is.
//   - Cell-construction failures that indicate a caller bug (bad arity,
//     an out-of-range link, a non-topological reference) are programmer
//     errors: they panic via invariant(), not these sentinels.
//   - These sentinels cover the few builder-level operations that can
//     fail for reasons outside the caller's immediate control (replace
//     mapping consistency, session misuse).
package builder

import "errors"

// ErrBadMapping indicates a Replace/EvaluateReplace IOMap that does not
// cover every input/output of the spliced-in subnet.
var ErrBadMapping = errors.New("builder: incomplete replace mapping")

// ErrUnknownEntry indicates a reference to an EntryID outside the current
// arena bounds.
var ErrUnknownEntry = errors.New("builder: unknown entry")

// ErrFanoutDisabled indicates a call to Fanout before EnableFanout.
var ErrFanoutDisabled = errors.New("builder: fanout index not enabled")
