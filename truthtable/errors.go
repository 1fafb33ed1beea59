package truthtable

import "errors"

// ErrVarCountMismatch indicates a binary truth-table operation (And, Or,
// Xor, Equal) whose operands were built for different variable counts.
var ErrVarCountMismatch = errors.New("truthtable: variable count mismatch")

// ErrBadHexLength indicates a ParseHex string whose length does not match
// the number of hex digits a table of the given variable count needs.
var ErrBadHexLength = errors.New("truthtable: hex string has the wrong length")

// ErrBadHexDigit indicates a ParseHex string containing a non-hex
// character.
var ErrBadHexDigit = errors.New("truthtable: invalid hex digit")
