package world

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// SameName compares names ignoring case, spacing and punctuation, so
// "all weather parka" matches "All-Weather Parka".
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

// FoldName case-folds s and keeps only its letters and digits.
func FoldName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cases.Fold().String(s))
}
