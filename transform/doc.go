// Package transform implements the post-construction optimization
// pipeline over a builder.SubnetBuilder: cut-based rewriting, algebraic
// refactoring, resubstitution against existing divisors, AND/OR/XOR tree
// rebalancing, and named scripts that sequence them. Every pass walks the
// arena through a SubnetIterator, proposes a replacement subnet via one of
// synth's resynthesizers, and commits it through builder.Replace only when
// a Replacer accepts the resulting cost delta.
package transform
