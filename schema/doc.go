// Package schema declares the bindable surface of a result object: an
// ordered list of field descriptors carrying a name, a semantic type tag,
// required/default metadata, and setter/zero-check closures bound through
// typed accessor functions.
//
// Schemas are constructed once via the declarative Builder and are read-only
// afterwards, so a single Schema may serve concurrent binds over independent
// result objects. There is no reflection anywhere: all type knowledge lives
// in the Type tags and in the closures captured at registration time.
//
// Enumeration member tables (EnumSet) can be declared in code or loaded from
// YAML via ParseEnums.
package schema
