// Package feature owns the decode -> dispatch -> render pipeline.
//
// Ownership boundary:
// - record decoding against the registry
// - per-kind instance caching
// - loaded-state lifecycle
//
// State is empty until the first successful decode and never resets
// afterwards. Decode errors are recoverable: they leave prior loaded
// state intact.
package feature
