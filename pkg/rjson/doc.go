// Package rjson is a fast JSON codec over a small closed value model.
//
// The package converts between a tagged-union Value (null, bool, int64,
// float64, string, array, ordered object) and compact RFC 8259 JSON text.
// Encode and Decode are synchronous, allocate no shared mutable state and
// are safe to call concurrently on independent inputs.
//
// Performance-minded details of the implementation: a precomputed decimal
// table for integers in [-256, 256], single-scan string escaping with a
// verbatim copy when nothing needs escaping, a bulk path that encodes
// homogeneous scalar arrays without per-element dispatch, zero-copy string
// decoding for escape-free segments and a size-stratified buffer pool for
// encode scratch space. None of these change observable output.
//
// Marshal, MarshalString and Unmarshal operate on the dynamic Go
// representation (map[string]any, []any and scalars) through an explicit
// conversion boundary: foreign types are rejected with a
// SerializationError rather than handled reflectively.
package rjson
