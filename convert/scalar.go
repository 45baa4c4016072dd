package convert

import (
	"fmt"
	"strconv"

	"arg-binder/schema"
)

// ToScalar converts a token to the scalar kind's Go value (int64, uint64,
// float64, bool, or string). This is the one fail-fast conversion path: an
// unconvertible token is a conversion error, not a silent skip.
func ToScalar(token string, kind schema.ScalarKind) (any, error) {
	switch kind {
	case schema.ScalarString:
		return token, nil

	case schema.ScalarInt:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to integer: %w", token, err)
		}

		return n, nil

	case schema.ScalarUint:
		n, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to unsigned integer: %w", token, err)
		}

		return n, nil

	case schema.ScalarFloat:
		n, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float: %w", token, err)
		}

		return n, nil

	case schema.ScalarBool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to bool: %w", token, err)
		}

		return b, nil

	default:
		return nil, fmt.Errorf("unsupported scalar kind %s", kind)
	}
}
