package weather

import (
	"strings"
	"unicode"

	"github.com/appengine-ltd/stormfront/internal/textmatch"
)

// Category is the coarse kind of a reported condition.
type Category int

const (
	Clear Category = iota
	Rainy
	Snowy
)

func (c Category) String() string {
	switch c {
	case Rainy:
		return "Rain"
	case Snowy:
		return "Snow"
	default:
		return "Clear"
	}
}

var (
	snowWords = []string{"snow", "sleet", "blizzard", "flurries", "snowfall"}
	rainWords = []string{"rain", "drizzle", "thunderstorm", "shower", "showers", "downpour", "storm"}
)

// Categorize maps free-text conditions such as "light intensity drizzle" to a
// category. Snow wins over rain when both appear. Misspellings of the longer
// condition words are tolerated.
func Categorize(text string) Category {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if matchesAny(tokens, snowWords) {
		return Snowy
	}
	if matchesAny(tokens, rainWords) {
		return Rainy
	}
	return Clear
}

func matchesAny(tokens, words []string) bool {
	for _, tok := range tokens {
		for _, w := range words {
			if textmatch.Near(tok, w) {
				return true
			}
		}
	}
	return false
}
