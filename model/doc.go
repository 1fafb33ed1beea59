// Package model defines the closed set of logical cell kinds, the
// CellType catalog, and the immutable Subnet representation that every
// other package in this module operates on.
//
// A Subnet is a frozen, topologically-ordered sequence of entries: inputs
// first, internal cells next, outputs last. It is produced exclusively by
// builder.SubnetBuilder.Make and never mutated afterwards, so it may be
// shared freely across goroutines and passes.
package model
