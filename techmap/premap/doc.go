// Package premap lowers an arbitrary-symbol builder.SubnetBuilder into one
// of the four canonical technology-independent bases techmap's cut-indexed
// DP runs against: AIG (AND/OR/NOT), XAG (AIG plus XOR), MIG (MAJ/NOT),
// XMG (MIG plus XOR). Each lowering walks the source builder once in
// arena order and re-adds every cell into a fresh builder through
// builder.AddCell, so structural hashing in the destination builder dedups
// whatever the rewrite produces — two fanins that lower to the same AND
// gate become one entry automatically.
package premap
