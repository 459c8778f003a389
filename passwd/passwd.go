// Package passwd validates numeric password candidates: digits must
// never decrease left to right, and at least one adjacent repeat must
// exist. The strict rule additionally requires a repeat group of exactly
// two digits somewhere.
package passwd

import "strconv"

// Valid reports whether n has non-decreasing digits and at least one
// pair of equal adjacent digits.
func Valid(n int64) bool {
	s := strconv.FormatInt(n, 10)
	hasPair := false
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] < s[i-1] {
			return false
		}
		if i+1 < len(s) && s[i] == s[i+1] {
			hasPair = true
		}
	}
	return hasPair
}

// ValidStrict reports whether n has non-decreasing digits and at least
// one repeat group of exactly two digits; longer runs alone do not
// qualify (123444 fails, 122333 passes).
func ValidStrict(n int64) bool {
	s := strconv.FormatInt(n, 10)
	hasDouble := false
	run := 1
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] < s[i-1] {
			return false
		}
		if i > 0 && s[i] == s[i-1] {
			run++
			continue
		}
		if run == 2 {
			hasDouble = true
		}
		run = 1
	}
	return hasDouble || run == 2
}

// Count returns how many candidates in [start, end] satisfy rule.
func Count(start, end int64, rule func(int64) bool) int64 {
	var total int64
	for n := start; n <= end; n++ {
		if rule(n) {
			total++
		}
	}
	return total
}
