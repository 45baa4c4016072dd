package match

import "strings"

// Result describes a resolved candidate name.
type Result struct {
	// Name is the candidate as it appeared in the list.
	Name string
	// Index is the candidate's position in the list.
	Index int
	// Distance is the accepted edit distance.
	Distance int
}

// Resolve picks the candidate closest to key by edit distance. An exact
// case-insensitive match returns immediately with distance 0. Otherwise the
// candidates are scanned in order with a running best initialized to
// maxDistance: a candidate is accepted when its distance does not exceed the
// running best, and acceptance tightens the running best to that distance.
// A later candidate at the same distance overwrites an earlier one; callers
// that depend on stable outcomes must keep the candidate order stable.
//
// maxDistance = 0 restricts matching to exact (case-insensitive) keys.
func Resolve(key string, names []string, maxDistance int) (Result, bool) {
	best := maxDistance
	res := Result{Index: -1}
	found := false

	for i, name := range names {
		if strings.EqualFold(key, name) {
			return Result{Name: name, Index: i}, true
		}

		d := Distance(key, name)
		if d > best {
			continue
		}

		best = d
		res = Result{Name: name, Index: i, Distance: d}
		found = true
	}

	return res, found
}
