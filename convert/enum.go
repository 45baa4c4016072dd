package convert

import (
	"strconv"
	"strings"

	"arg-binder/schema"
)

// flagSeparators are the characters that may join members of a bit-flag
// combination token, e.g. "Read,Write" or "read|write".
const flagSeparators = ",- |_"

// ToEnum converts a token to an enumeration value. Integer tokens are taken
// at face value without membership validation, undeclared values included.
// For flag sets, a token that splits into several sub-tokens converts each
// recursively (single-character sub-tokens get abbreviation matching) and
// combines the results with bitwise OR; any sub-token failure fails the
// whole conversion, never producing a partial flag set. Otherwise the token
// is matched against member names case-insensitively, by prefix when
// singleChar is set.
func ToEnum(token string, set *schema.EnumSet, singleChar bool) (int64, bool) {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return n, true
	}

	if set == nil {
		return 0, false
	}

	if set.Flags {
		parts := strings.FieldsFunc(token, isFlagSeparator)
		if len(parts) > 1 {
			var combined int64

			for _, part := range parts {
				v, ok := ToEnum(part, set, len(part) < 2)
				if !ok {
					return 0, false
				}

				combined |= v
			}

			return combined, true
		}
	}

	return set.Lookup(token, singleChar)
}

func isFlagSeparator(r rune) bool {
	return strings.ContainsRune(flagSeparators, r)
}
