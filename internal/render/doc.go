// Package render owns the draw surface contract and its backends.
//
// Ownership boundary:
// - Surface primitives (circle, polygon)
// - no-op, logging, recording, and raster sinks
//
// Decoding never happens here; surfaces only consume parameters the
// pipeline hands them.
package render
