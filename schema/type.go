package schema

// Type tags a field's declared type with its semantic category and the
// details the converters need: scalar subkind, enum member table, collection
// element type and sizing behavior.
type Type struct {
	Kind   Kind
	Scalar ScalarKind // subkind for KindScalar and scalar collection elements
	Enum   *EnumSet   // member table for KindEnum and enum collection elements
	Elem   *Type      // element type for KindCollection
	Fixed  bool       // fixed-size collection: pre-sized to the token's split length
}

// StringOf returns the string field type.
func StringOf() Type {
	return Type{Kind: KindString}
}

// DurationOf returns the duration field type.
func DurationOf() Type {
	return Type{Kind: KindDuration}
}

// ScalarOf returns a scalar field type of the given subkind.
func ScalarOf(k ScalarKind) Type {
	return Type{Kind: KindScalar, Scalar: k}
}

// EnumOf returns an enumeration field type backed by the given member table.
func EnumOf(set *EnumSet) Type {
	return Type{Kind: KindEnum, Enum: set}
}

// CollectionOf returns a collection field type with the given element type.
// Fixed collections are pre-sized to the input split length; growable ones
// only hold successfully converted elements.
func CollectionOf(elem Type, fixed bool) Type {
	e := elem

	return Type{Kind: KindCollection, Elem: &e, Fixed: fixed}
}
