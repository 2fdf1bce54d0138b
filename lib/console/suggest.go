// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// suggestionThreshold is the largest edit distance still worth
// suggesting. Three catches transpositions and dropped or doubled
// characters without proposing unrelated names.
const suggestionThreshold = 3

// suggestCommand returns the registered name closest to unknown, or ""
// if unknown is empty or nothing is within the threshold. Ties go to
// the earlier name in names.
func suggestCommand(unknown string, names []string) string {
	if unknown == "" {
		return ""
	}
	bestName := ""
	bestDistance := suggestionThreshold + 1
	for _, name := range names {
		distance := levenshtein(unknown, name)
		if distance < bestDistance {
			bestDistance = distance
			bestName = name
		}
	}
	return bestName
}

// levenshtein computes the edit distance between two strings: the
// minimum number of single-byte insertions, deletions or substitutions
// turning one into the other.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// One row of the distance matrix, over the shorter string.
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}

		previous = current
	}

	return previous[len(a)]
}
