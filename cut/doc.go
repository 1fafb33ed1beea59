// Package cut enumerates k-feasible cuts over a builder arena, computes
// reconvergence-driven cuts for local resynthesis windows, and extracts
// the maximum fanout-free cone (MFFC) rooted at an entry — the three
// primitives every resynthesizer and transformer pass in this module
// builds its replacement windows from.
package cut
