package schema

//go:generate go tool stringer -type=Kind -output=kind_string.go
//go:generate go tool stringer -type=ScalarKind -output=scalarkind_string.go

// Kind is the semantic category of a field's declared type. Every declared
// type maps to exactly one category; the value coercer is total over them.
type Kind int

const (
	KindInvalid Kind = iota

	KindString
	KindDuration
	KindCollection
	KindEnum
	KindScalar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// ScalarKind refines KindScalar and collection element types.
type ScalarKind int

const (
	ScalarInvalid ScalarKind = iota

	ScalarString
	ScalarInt
	ScalarUint
	ScalarFloat
	ScalarBool
)
