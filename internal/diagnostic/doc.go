// Package diagnostic collects structured validity findings produced by the
// post-bind queries, most notably required-field violations. Findings carry
// a code and the field they concern so callers can report them without
// string matching.
package diagnostic
