// Package record owns the shape record wire contract and parsing primitives.
//
// Ownership boundary:
// - fixed-width kind tag
// - raw float64 parameter block
// - encode side for producers and tests
//
// One record is a little-endian uint32 tag followed by ParamCount(kind)
// little-endian IEEE754 doubles, no padding, no framing. Little-endian
// matches the files the original producer writes.
package record
