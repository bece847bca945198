// Package sorting contains small in-place sorts. Each function sorts its
// argument and returns the same slice so calls can be chained.
package sorting

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// CaseInsensitive sorts s by lowercased value. Strings that differ only in case
// keep their relative order.
func CaseInsensitive(s []string) []string {
	slices.SortStableFunc(s, func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	return s
}

// Person is a name record ordered by People.
type Person struct {
	First string
	Last  string
}

func (p Person) String() string {
	return p.First + " " + p.Last
}

// People sorts p by last name, then first name. Comparison is byte-wise, so
// case matters.
func People(p []Person) []Person {
	slices.SortStableFunc(p, func(a, b Person) bool {
		if a.Last != b.Last {
			return a.Last < b.Last
		}
		return a.First < b.First
	})
	return p
}

// Selection sorts s in ascending order by repeatedly selecting the minimum of
// the unsorted suffix. It is O(n^2) and exists for small inputs.
func Selection[N constraints.Ordered](s []N) []N {
	for i := range s {
		lowest := s[i]
		lowestIdx := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < lowest {
				lowest = s[j]
				lowestIdx = j
			}
		}
		// When s[i] is already the minimum this swaps it with itself.
		s[lowestIdx] = s[i]
		s[i] = lowest
	}
	return s
}
