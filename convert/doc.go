// Package convert turns raw token strings into typed values under the
// direction of a schema.Type tag. All converters follow the (value, ok, err)
// convention: fail-soft paths report ok=false and never return an error;
// only top-level scalar conversion is fail-fast.
//
// Key functions:
//   - ToEnum: enumeration and bit-flag tokens
//   - ParseDuration / FormatDuration: the number-plus-unit-letter notation
//   - ToCollection: delimited tokens into fixed or growable collections
//   - Coerce: the top-level dispatcher over all five type categories
package convert
