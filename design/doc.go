// Package design tracks a named collection of subnet builders as a
// hierarchy: a DesignBuilder graph records which subnet drives which
// (and over what kind of signal), and checkpoints let a shell session
// roll a whole design back to an earlier save_point.
package design
