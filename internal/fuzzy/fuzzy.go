// Package fuzzy picks "did you mean" suggestions for unknown commands and
// flags.
package fuzzy

import "strings"

// Closest returns the candidate with the smallest edit distance to input, or
// "" when no candidate is within maxDistance. Matching is case-insensitive;
// an exact match is never suggested. Ties go to the candidate appearing first.
func Closest(input string, candidates []string, maxDistance int) string {
	if len(input) < 2 {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := distance(input, lower, bestDistance); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// distance computes the Levenshtein distance between a and b, giving up with
// limit once the result cannot be below limit.
func distance(a, b string, limit int) int {
	if abs(len(a)-len(b)) >= limit {
		return limit
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin >= limit {
			return limit
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
