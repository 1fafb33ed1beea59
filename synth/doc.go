// Package synth implements the resynthesizers that turn a truth table
// into a replacement subnet: exact small-function synthesis (ISOP,
// Zhegalkin/Reed-Muller), majority-gate synthesis (Akers, De Micheli),
// disjoint-support and bi-decomposition, an NPN4 canonical-class lookup
// table, and single-literal algebraic quick factoring (no multi-cube
// kernel/co-kernel extraction). Every implementation
// shares the Resynthesizer interface so transform's passes can try
// several and keep whichever produces the cheaper replacement.
package synth
