package convert

import (
	"strconv"
	"time"

	"arg-binder/schema"
)

//go:generate go tool stringer -type=Unit -output=unit_string.go

// Unit is a duration unit selectable by its single-letter literal suffix.
// Milliseconds (suffix F) is the zero value and therefore the default
// representation.
type Unit int

const (
	Milliseconds Unit = iota // F
	Seconds                  // S
	Minutes                  // M
	Hours                    // H
	Days                     // D
)

// unitSet drives suffix matching through the enum abbreviation path.
var unitSet = &schema.EnumSet{
	Name: "unit",
	Members: []schema.EnumMember{
		{Name: "F", Value: int64(Milliseconds)},
		{Name: "S", Value: int64(Seconds)},
		{Name: "M", Value: int64(Minutes)},
		{Name: "H", Value: int64(Hours)},
		{Name: "D", Value: int64(Days)},
	},
}

func (u Unit) scale() time.Duration {
	switch u {
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	default:
		return 0
	}
}

func (u Unit) suffix() string {
	switch u {
	case Milliseconds:
		return "F"
	case Seconds:
		return "S"
	case Minutes:
		return "M"
	case Hours:
		return "H"
	case Days:
		return "D"
	default:
		return ""
	}
}

// ParseDuration parses a duration literal: either the standard Go notation
// ("2h45m") or a number with a single-letter unit suffix ("5S", "1.5h",
// "250f"). The suffix is resolved case-insensitively through the enum
// abbreviation path; an unresolvable suffix or prefix yields the zero
// duration. ParseDuration never fails.
func ParseDuration(token string) time.Duration {
	if d, err := time.ParseDuration(token); err == nil {
		return d
	}

	if token == "" {
		return 0
	}

	u, ok := ToEnum(token[len(token)-1:], unitSet, true)
	if !ok {
		return 0
	}

	n, err := strconv.ParseFloat(token[:len(token)-1], 64)
	if err != nil {
		return 0
	}

	return time.Duration(n * float64(Unit(u).scale()))
}

// FormatDuration renders the duration's magnitude in the requested unit,
// concatenated with the unit's suffix letter. A unit outside the declared
// set renders as an empty string.
func FormatDuration(d time.Duration, unit Unit) string {
	s := unit.scale()
	if s == 0 {
		return ""
	}

	n := float64(d) / float64(s)

	return strconv.FormatFloat(n, 'f', -1, 64) + unit.suffix()
}
