package schema

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Integer constrains signed integer field types, including named enums.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned constrains unsigned integer field types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float constrains floating-point field types.
type Float interface {
	~float32 | ~float64
}

// Builder accumulates field registrations and produces an immutable Schema.
// Registration helpers are package-level functions because they introduce
// their own type parameters for the field's Go type.
type Builder[T any] struct {
	fields []Field[T]
}

// NewBuilder returns an empty Builder for T.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Build freezes the registered fields into a Schema. Duplicate field names
// (case-insensitive) panic: they would make key resolution ambiguous in a
// way no caller can recover from.
func (b *Builder[T]) Build() *Schema[T] {
	names := make([]string, len(b.fields))

	for i, f := range b.fields {
		name := strings.ToLower(f.Name)
		if slices.Contains(names[:i], name) {
			panic(fmt.Sprintf("schema: duplicate field name %q", f.Name))
		}

		names[i] = name
	}

	return &Schema[T]{fields: slices.Clone(b.fields), names: names}
}

func (b *Builder[T]) add(f Field[T]) {
	b.fields = append(b.fields, f)
}

// FieldOption customizes a field registration.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	required bool
	def      any
}

// Required marks the field for the post-bind required-field query.
func Required() FieldOption {
	return func(c *fieldConfig) { c.required = true }
}

// Default declares the field's default value. The value's type must match
// the field's Go type exactly; a mismatch panics at registration time.
func Default(v any) FieldOption {
	return func(c *fieldConfig) { c.def = v }
}

func applyOptions(opts []FieldOption) fieldConfig {
	var cfg fieldConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// String registers a string field backed by the given accessor.
func String[T any](b *Builder[T], name string, acc func(*T) *string, opts ...FieldOption) {
	b.add(valueField(name, StringOf(), acc,
		func(v any) string { return v.(string) }, applyOptions(opts)))
}

// Int registers a signed integer scalar field.
func Int[T any, V Integer](b *Builder[T], name string, acc func(*T) *V, opts ...FieldOption) {
	b.add(valueField(name, ScalarOf(ScalarInt), acc,
		func(v any) V { return V(v.(int64)) }, applyOptions(opts)))
}

// Uint registers an unsigned integer scalar field.
func Uint[T any, V Unsigned](b *Builder[T], name string, acc func(*T) *V, opts ...FieldOption) {
	b.add(valueField(name, ScalarOf(ScalarUint), acc,
		func(v any) V { return V(v.(uint64)) }, applyOptions(opts)))
}

// FloatField registers a floating-point scalar field. (The shorter name is
// taken by the Float constraint.)
func FloatField[T any, V Float](b *Builder[T], name string, acc func(*T) *V, opts ...FieldOption) {
	b.add(valueField(name, ScalarOf(ScalarFloat), acc,
		func(v any) V { return V(v.(float64)) }, applyOptions(opts)))
}

// Bool registers a boolean scalar field.
func Bool[T any](b *Builder[T], name string, acc func(*T) *bool, opts ...FieldOption) {
	b.add(valueField(name, ScalarOf(ScalarBool), acc,
		func(v any) bool { return v.(bool) }, applyOptions(opts)))
}

// Duration registers a duration field.
func Duration[T any](b *Builder[T], name string, acc func(*T) *time.Duration, opts ...FieldOption) {
	b.add(valueField(name, DurationOf(), acc,
		func(v any) time.Duration { return v.(time.Duration) }, applyOptions(opts)))
}

// Enum registers an enumeration field backed by the given member table.
func Enum[T any, V Integer](b *Builder[T], name string, set *EnumSet, acc func(*T) *V, opts ...FieldOption) {
	b.add(valueField(name, EnumOf(set), acc,
		func(v any) V { return V(v.(int64)) }, applyOptions(opts)))
}

// StringSlice registers a growable string collection field.
func StringSlice[T any](b *Builder[T], name string, acc func(*T) *[]string, opts ...FieldOption) {
	stringCollection(b, name, acc, false, opts)
}

// StringArray registers a fixed-size string collection field: the bound
// slice keeps the token's split length, with dropped slots left empty.
func StringArray[T any](b *Builder[T], name string, acc func(*T) *[]string, opts ...FieldOption) {
	stringCollection(b, name, acc, true, opts)
}

// IntSlice registers a growable signed integer collection field.
func IntSlice[T any, V Integer](b *Builder[T], name string, acc func(*T) *[]V, opts ...FieldOption) {
	intCollection(b, name, acc, false, opts)
}

// IntArray registers a fixed-size signed integer collection field.
func IntArray[T any, V Integer](b *Builder[T], name string, acc func(*T) *[]V, opts ...FieldOption) {
	intCollection(b, name, acc, true, opts)
}

// FloatSlice registers a growable floating-point collection field.
func FloatSlice[T any, V Float](b *Builder[T], name string, acc func(*T) *[]V, opts ...FieldOption) {
	b.add(sliceField(name, CollectionOf(ScalarOf(ScalarFloat), false), acc,
		func(v any) []V { return castSlice[float64, V](v.([]float64)) }, applyOptions(opts)))
}

// EnumSlice registers a growable enumeration collection field.
func EnumSlice[T any, V Integer](b *Builder[T], name string, set *EnumSet, acc func(*T) *[]V, opts ...FieldOption) {
	enumCollection(b, name, set, acc, false, opts)
}

// EnumArray registers a fixed-size enumeration collection field.
func EnumArray[T any, V Integer](b *Builder[T], name string, set *EnumSet, acc func(*T) *[]V, opts ...FieldOption) {
	enumCollection(b, name, set, acc, true, opts)
}

func stringCollection[T any](b *Builder[T], name string, acc func(*T) *[]string, fixed bool, opts []FieldOption) {
	b.add(sliceField(name, CollectionOf(ScalarOf(ScalarString), fixed), acc,
		func(v any) []string { return v.([]string) }, applyOptions(opts)))
}

func intCollection[T any, V Integer](b *Builder[T], name string, acc func(*T) *[]V, fixed bool, opts []FieldOption) {
	b.add(sliceField(name, CollectionOf(ScalarOf(ScalarInt), fixed), acc,
		func(v any) []V { return castSlice[int64, V](v.([]int64)) }, applyOptions(opts)))
}

func enumCollection[T any, V Integer](b *Builder[T], name string, set *EnumSet, acc func(*T) *[]V, fixed bool, opts []FieldOption) {
	b.add(sliceField(name, CollectionOf(EnumOf(set), fixed), acc,
		func(v any) []V { return castSlice[int64, V](v.([]int64)) }, applyOptions(opts)))
}

// valueField builds a Field for a comparable value type: the zero check is a
// plain equality against the declared default.
func valueField[T any, V comparable](
	name string,
	typ Type,
	acc func(*T) *V,
	conv func(any) V,
	cfg fieldConfig,
) Field[T] {
	var def V
	if cfg.def != nil {
		def = cfg.def.(V)
	}

	return Field[T]{
		Name:     name,
		Type:     typ,
		Required: cfg.required,
		set:      func(target *T, v any) { *acc(target) = conv(v) },
		init:     func(target *T) { *acc(target) = def },
		isZero:   func(target *T) bool { return *acc(target) == def },
	}
}

// sliceField builds a Field for a collection type: the zero check compares
// element-wise against the declared default slice (nil unless overridden).
func sliceField[T any, V comparable](
	name string,
	typ Type,
	acc func(*T) *[]V,
	conv func(any) []V,
	cfg fieldConfig,
) Field[T] {
	var def []V
	if cfg.def != nil {
		def = cfg.def.([]V)
	}

	return Field[T]{
		Name:     name,
		Type:     typ,
		Required: cfg.required,
		set:      func(target *T, v any) { *acc(target) = conv(v) },
		init:     func(target *T) { *acc(target) = slices.Clone(def) },
		isZero:   func(target *T) bool { return slices.Equal(*acc(target), def) },
	}
}

func castSlice[E Integer | Unsigned | Float, V Integer | Unsigned | Float](in []E) []V {
	out := make([]V, len(in))

	for i, e := range in {
		out[i] = V(e)
	}

	return out
}
