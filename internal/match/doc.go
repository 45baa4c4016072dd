// Package match provides Levenshtein distance calculation and closest-name
// resolution for binding argument keys to schema field names.
//
// Key functions:
//   - Distance: computes edit distance between strings
//   - Resolve: picks the closest candidate name under a distance ceiling
package match
