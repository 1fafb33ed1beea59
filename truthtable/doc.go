// Package truthtable provides the completely-specified Boolean function
// representation used throughout resynthesis: a small, word-packed form
// for functions of up to 6 variables, and a bitset-backed form beyond
// that, behind one TruthTable interface. Evaluate walks a builder arena
// in topological order and assigns each entry its function; synth builds
// replacement networks from the tables Evaluate produces.
package truthtable
