package convert

import (
	"strconv"
	"strings"

	"arg-binder/schema"
)

// collectionSeparators split a collection token into elements.
const collectionSeparators = ", "

// ToCollection splits a delimited token and converts each element according
// to the collection's element type. Elements that fail conversion are
// dropped rather than failing the collection: a fixed collection keeps the
// split length with zero values at the dropped slots, a growable one
// shrinks. The result is a []string, []int64, []uint64, []float64, []bool,
// or (for enum elements) []int64, matching the coercer's per-kind value
// representation.
func ToCollection(token string, typ schema.Type) (any, bool) {
	elem := typ.Elem
	if elem == nil {
		return nil, false
	}

	parts := strings.FieldsFunc(token, func(r rune) bool {
		return strings.ContainsRune(collectionSeparators, r)
	})

	if elem.Kind == schema.KindEnum {
		return convertElems(parts, typ.Fixed, func(s string) (int64, bool) {
			return ToEnum(s, elem.Enum, false)
		}), true
	}

	switch elem.Scalar {
	case schema.ScalarString:
		return convertElems(parts, typ.Fixed, func(s string) (string, bool) {
			return s, true
		}), true

	case schema.ScalarInt:
		return convertElems(parts, typ.Fixed, func(s string) (int64, bool) {
			n, err := strconv.ParseInt(s, 10, 64)
			return n, err == nil
		}), true

	case schema.ScalarUint:
		return convertElems(parts, typ.Fixed, func(s string) (uint64, bool) {
			n, err := strconv.ParseUint(s, 10, 64)
			return n, err == nil
		}), true

	case schema.ScalarFloat:
		return convertElems(parts, typ.Fixed, func(s string) (float64, bool) {
			n, err := strconv.ParseFloat(s, 64)
			return n, err == nil
		}), true

	case schema.ScalarBool:
		return convertElems(parts, typ.Fixed, func(s string) (bool, bool) {
			b, err := strconv.ParseBool(s)
			return b, err == nil
		}), true

	default:
		return nil, false
	}
}

// convertElems assembles the converted elements. Fixed collections are
// pre-sized to the input count so dropped elements leave zero-valued slots;
// growable collections append successes only.
func convertElems[V any](parts []string, fixed bool, conv func(string) (V, bool)) []V {
	if fixed {
		out := make([]V, len(parts))

		for i, p := range parts {
			if v, ok := conv(p); ok {
				out[i] = v
			}
		}

		return out
	}

	out := make([]V, 0, len(parts))

	for _, p := range parts {
		if v, ok := conv(p); ok {
			out = append(out, v)
		}
	}

	return out
}
