package convert

import "arg-binder/schema"

// Coerce converts a raw token value according to the field's declared type,
// dispatching over the five type categories. It returns the typed value,
// whether a value was produced, and an error only on the scalar fail-fast
// path; every other category is fail-soft.
func Coerce(token string, typ schema.Type) (any, bool, error) {
	switch typ.Kind {
	case schema.KindString:
		return token, true, nil

	case schema.KindDuration:
		return ParseDuration(token), true, nil

	case schema.KindCollection:
		v, ok := ToCollection(token, typ)
		return v, ok, nil

	case schema.KindEnum:
		v, ok := ToEnum(token, typ.Enum, false)
		if !ok {
			return nil, false, nil
		}

		return v, true, nil

	case schema.KindScalar:
		v, err := ToScalar(token, typ.Scalar)
		if err != nil {
			return nil, false, err
		}

		return v, true, nil

	default:
		return nil, false, nil
	}
}
