package schema

import "testing"

var accessSet = &EnumSet{
	Name:  "access",
	Flags: true,
	Members: []EnumMember{
		{Name: "None", Value: 0},
		{Name: "Read", Value: 1},
		{Name: "Write", Value: 2},
		{Name: "Execute", Value: 4},
	},
}

func TestEnumSetLookup(t *testing.T) {
	tests := []struct {
		token  string
		prefix bool
		want   int64
		ok     bool
	}{
		{"Read", false, 1, true},
		{"read", false, 1, true},
		{"WRITE", false, 2, true},
		{"r", false, 0, false},  // no abbreviation without prefix mode
		{"r", true, 1, true},    // abbreviation
		{"w", true, 2, true},
		{"e", true, 4, true},
		{"n", true, 0, true},    // None
		{"missing", false, 0, false},
		{"", true, 0, false},    // empty token never prefix-matches
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := accessSet.Lookup(tt.token, tt.prefix)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Lookup(%q, %v) = (%d, %v), want (%d, %v)",
					tt.token, tt.prefix, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEnumSetLookupPrefixPrefersFirstDeclared(t *testing.T) {
	set := &EnumSet{
		Name: "mode",
		Members: []EnumMember{
			{Name: "Merge", Value: 0},
			{Name: "Move", Value: 1},
		},
	}

	// "m" abbreviates both; declaration order decides.
	got, ok := set.Lookup("m", true)
	if !ok || got != 0 {
		t.Errorf("Lookup(%q, true) = (%d, %v), want (0, true)", "m", got, ok)
	}
}
