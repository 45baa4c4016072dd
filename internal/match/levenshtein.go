package match

import (
	"math"
	"strings"
)

// Unmatchable is the distance reported when one of the inputs is empty and
// the strings are not equal. No finite ceiling accepts it, so an empty key
// or candidate can never win a resolution.
const Unmatchable = math.MaxInt32

// Distance computes the Levenshtein distance (edit distance) between two
// strings. The distance is the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform one string
// into the other. Strings that are equal under case folding have distance 0.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b string) int {
	if strings.EqualFold(a, b) {
		return 0
	}

	if len(a) == 0 || len(b) == 0 {
		return Unmatchable
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	// Initialize first row
	for i := range prev {
		prev[i] = i
	}

	// Fill in the rest of the matrix
	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
