package parser

import (
	"strconv"
	"strings"
)

// normaliseInput lowercases raw and reduces it to words separated by single
// spaces. Hyphens and apostrophes split words: "Storm-Seer's" is "storm seer s".
func normaliseInput(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '?':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isFiller(token string) bool {
	switch token {
	case "to", "the", "a", "an", "at", "my", "some", "of":
		return true
	}
	return false
}

// isJoiner reports a word that starts a trailing phrase the verb does not
// need, as in "attack wolf with axe".
func isJoiner(token string) bool {
	switch token {
	case "with", "on", "using", "onto":
		return true
	}
	return false
}

func isPronoun(token string) bool {
	switch token {
	case "it", "that", "them", "this", "him", "her":
		return true
	}
	return false
}

// parseTurns reads "3", "3x" or "3turns".
func parseTurns(token string) (*Quantity, bool) {
	n := strings.TrimSuffix(strings.TrimSuffix(token, "turns"), "x")
	v, err := strconv.Atoi(n)
	if err != nil || v < 0 {
		return nil, false
	}
	return &Quantity{Raw: token, N: v}, true
}

// freeText maps conversational input onto a verb. Phrases must appear as
// whole words.
var freeText = []struct {
	phrase string
	verb   string
}{
	{"check my bag", "inventory"},
	{"what do i have", "inventory"},
	{"what have i got", "inventory"},
	{"how am i", "status"},
	{"am i ok", "status"},
	{"the weather", "weather"},
	{"is it raining", "weather"},
	{"is it snowing", "weather"},
	{"how cold", "weather"},
	{"i need a fire", "campfire"},
	{"start a fire", "campfire"},
	{"make a fire", "campfire"},
	{"freezing", "campfire"},
	{"thirsty", "drink"},
	{"hungry", "eat"},
	{"starving", "eat"},
	{"sweat it out", "steam"},
	{"steam hut", "steam"},
	{"storm seer", "talk"},
	{"prophecy", "talk"},
	{"tired", "sleep"},
}

func inferFreeText(normalised string) (*verb, bool) {
	padded := " " + normalised + " "
	for _, ft := range freeText {
		if strings.Contains(padded, " "+ft.phrase+" ") {
			return lookupVerb(ft.verb), true
		}
	}
	return nil, false
}
