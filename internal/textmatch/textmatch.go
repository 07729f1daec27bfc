// Package textmatch is the typo tolerance shared by the command parser and
// the weather condition categoriser.
package textmatch

import "github.com/agnivade/levenshtein"

// MaxTypos is how many edits a word of length n may carry and still match.
// Words under six letters must be spelled exactly.
func MaxTypos(n int) int {
	switch {
	case n < 6:
		return 0
	case n < 9:
		return 1
	default:
		return 2
	}
}

// Typos returns the edit distance from word to target and whether it is
// within the tolerance for target's length.
func Typos(word, target string) (int, bool) {
	if word == target {
		return 0, true
	}
	limit := MaxTypos(len(target))
	if limit == 0 || len(word) < 4 {
		return 0, false
	}
	d := levenshtein.ComputeDistance(word, target)
	return d, d <= limit
}

// Near reports whether word is target or a tolerated misspelling of it.
func Near(word, target string) bool {
	_, ok := Typos(word, target)
	return ok
}
