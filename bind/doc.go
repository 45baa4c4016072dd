// Package bind orchestrates the full pipeline: tokenize raw key=value
// arguments, resolve each key to a schema field by edit-distance matching,
// coerce the value through the type-directed converters, and apply it to the
// result object. Malformed tokens, unresolved keys, and fail-soft conversion
// misses are skipped silently; only scalar conversion errors surface.
//
// Validate provides the separate read-only required-field query.
package bind
