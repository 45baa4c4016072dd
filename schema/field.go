package schema

// Field describes one bindable target field of T: its name, semantic type,
// required/default metadata, and the closures that mutate or inspect the
// field on a concrete target. The closures are bound by the Builder from a
// typed accessor function; a Field never inspects T at runtime.
type Field[T any] struct {
	Name     string
	Type     Type
	Required bool

	set    func(*T, any)
	init   func(*T)
	isZero func(*T) bool
}

// Apply stores a coerced value into the target's field. The value must be
// the coercer's representation for the field's Type (string, time.Duration,
// int64 for enums, and so on); the closure converts it to the declared Go
// type.
func (f *Field[T]) Apply(target *T, v any) {
	f.set(target, v)
}

// IsZero reports whether the target's field still equals its declared
// default (the zero value unless a Default option was given).
func (f *Field[T]) IsZero(target *T) bool {
	return f.isZero(target)
}

// Schema is the immutable, ordered set of field descriptors for T. Build one
// with a Builder; a Schema is safe for concurrent use.
type Schema[T any] struct {
	fields []Field[T]
	names  []string
}

// Len returns the number of declared fields.
func (s *Schema[T]) Len() int {
	return len(s.fields)
}

// Field returns the i-th declared field.
func (s *Schema[T]) Field(i int) *Field[T] {
	return &s.fields[i]
}

// Names returns the lower-cased field names in declaration order. The slice
// is shared; callers must not modify it.
func (s *Schema[T]) Names() []string {
	return s.names
}

// ApplyDefaults writes every field's declared default into the target.
func (s *Schema[T]) ApplyDefaults(target *T) {
	for i := range s.fields {
		s.fields[i].init(target)
	}
}
