package schema

import "strings"

// EnumMember is one declared member of an enumeration.
type EnumMember struct {
	Name  string
	Value int64
}

// EnumSet is the declared member table of an enumeration type. Flag sets
// (Flags true) allow tokens that bitwise-combine several members.
type EnumSet struct {
	Name    string
	Flags   bool
	Members []EnumMember
}

// Lookup finds a member by name, case-insensitively. In prefix mode
// (abbreviation matching) the member name only has to start with the token.
// Members are scanned in declaration order, so the first declared member
// wins an ambiguous abbreviation.
func (s *EnumSet) Lookup(token string, prefix bool) (int64, bool) {
	for _, m := range s.Members {
		if strings.EqualFold(m.Name, token) {
			return m.Value, true
		}

		if prefix && token != "" && foldHasPrefix(m.Name, token) {
			return m.Value, true
		}
	}

	return 0, false
}

func foldHasPrefix(name, token string) bool {
	return len(name) >= len(token) && strings.EqualFold(name[:len(token)], token)
}
