// Package techmap covers a premapped builder.SubnetBuilder with cells
// from a Library, using NPN-class matching over enumerated cuts to find
// candidate cells and a per-entry cost comparison to pick among them.
// Unmap reverses a mapped network back to primitive gates by inlining
// each library cell's structural Impl.
package techmap
