package bind

import (
	"fmt"

	"arg-binder/internal/diagnostic"
	"arg-binder/schema"
)

// Validate runs the read-only required-field query over a bound object:
// every field flagged required that still equals its declared default/zero
// value yields a required_field error diagnostic. Validation never mutates
// the target and is not part of the parse itself.
func Validate[T any](s *schema.Schema[T], target *T) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		if f.Required && f.IsZero(target) {
			diags.AddError("required_field",
				fmt.Sprintf("required field %q is unset", f.Name), f.Name)
		}
	}

	return diags
}

// Valid reports whether every required field holds a non-default value.
func Valid[T any](s *schema.Schema[T], target *T) bool {
	return Validate(s, target).IsValid()
}
