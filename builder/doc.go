// Package builder implements SubnetBuilder, the mutable arena that backs
// every transformation pass in this module.
//
// SubnetBuilder owns a growing, cache-friendly slice of entries. Adding a
// cell canonicalizes its fanin links, applies the inline algebraic
// simplifications (constant folding, BUF fusion, idempotence and
// cancellation), and structurally hashes the result so two
// semantically identical cells always collapse onto one entry. Builders
// track per-entry depth, refcount, and an optional fanout index
// incrementally; Make freezes the builder into an immutable model.Subnet.
//
// Replace and EvaluateReplace splice an externally-synthesized subnet back
// into the arena; EvaluateReplace rolls back every mutation it makes,
// giving callers a pure cost estimate.
package builder
