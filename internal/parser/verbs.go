package parser

import (
	"slices"
	"strings"

	"github.com/appengine-ltd/stormfront/internal/textmatch"
)

// argKind says what a verb expects after it.
type argKind int

const (
	noArgs argKind = iota
	anyArgs
	direction
	creature
	itemHere
	carried
	coating
	turns
)

type verb struct {
	name     string
	aliases  []string
	kind     IntentKind
	args     argKind
	optional bool
}

// Coatings are the substances a weapon can be coated with.
var Coatings = []string{"yew berry", "snow"}

var verbs = []verb{
	{name: "help", aliases: []string{"h", "commands"}, kind: Help},
	{name: "look", aliases: []string{"l", "look around", "where am i", "map"}, kind: Query, args: anyArgs},
	{name: "status", aliases: []string{"stats", "me", "health", "effects"}, kind: Query},
	{name: "weather", aliases: []string{"sky", "forecast"}, kind: Query},
	{name: "inventory", aliases: []string{"inv", "bag", "check bag"}, kind: Query},
	{name: "wait", aliases: []string{"z", "pass", "skip"}, args: turns, optional: true},
	{name: "go", aliases: []string{"walk", "move", "head", "travel"}, args: direction},
	{name: "attack", aliases: []string{"hit", "strike", "fight", "kill"}, args: creature},
	{name: "take", aliases: []string{"get", "grab", "pick up", "pickup"}, args: itemHere},
	{name: "eat", aliases: []string{"consume"}, args: carried},
	{name: "drink", aliases: []string{"sip"}, args: carried, optional: true},
	{name: "wield", aliases: []string{"equip", "ready"}, args: carried},
	{name: "campfire", aliases: []string{"build campfire", "build fire", "light fire", "make fire", "build"}},
	{name: "steam", aliases: []string{"steam therapy", "sauna", "sweat"}},
	{name: "coat", aliases: []string{"coat axe", "coat weapon", "smear"}, args: coating},
	{name: "talk", aliases: []string{"talk to", "speak to", "speak", "ask"}, args: creature, optional: true},
	{name: "sleep", aliases: []string{"rest", "nap"}},
	{name: "quit", aliases: []string{"exit", "q"}},
}

type phrase struct {
	verb   *verb
	alias  bool
	tokens []string
}

// phrases lists every verb spelling, longest first so "pick up" wins over "pick".
var phrases = func() []phrase {
	var out []phrase
	for i := range verbs {
		v := &verbs[i]
		out = append(out, phrase{verb: v, tokens: []string{v.name}})
		for _, a := range v.aliases {
			out = append(out, phrase{verb: v, alias: true, tokens: strings.Fields(a)})
		}
	}
	slices.SortStableFunc(out, func(a, b phrase) int { return len(b.tokens) - len(a.tokens) })
	return out
}()

func lookupVerb(name string) *verb {
	for i := range verbs {
		if verbs[i].name == name {
			return &verbs[i]
		}
	}
	return nil
}

// verbMatch is a verb recognised at the start of the input.
type verbMatch struct {
	verb     *verb
	consumed int
	score    float64
}

// matchVerb recognises the verb that opens tokens: an exact spelling first,
// then an unambiguous prefix of three or more letters, then a tolerated typo.
// More than one equally good candidate is returned for the caller to ask about.
func matchVerb(tokens []string) []verbMatch {
	if len(tokens) == 0 {
		return nil
	}
	for _, p := range phrases {
		if len(p.tokens) <= len(tokens) && slices.Equal(p.tokens, tokens[:len(p.tokens)]) {
			score := 1.0
			if p.alias {
				score = 0.97
			}
			return []verbMatch{{verb: p.verb, consumed: len(p.tokens), score: score}}
		}
	}

	word := tokens[0]
	if len(word) >= 3 {
		var found []verbMatch
		for _, p := range phrases {
			if len(p.tokens) == 1 && strings.HasPrefix(p.tokens[0], word) {
				found = addMatch(found, verbMatch{verb: p.verb, consumed: 1, score: 0.9})
			}
		}
		if len(found) > 0 {
			return found
		}
	}

	best := -1
	var found []verbMatch
	for _, p := range phrases {
		if len(p.tokens) != 1 {
			continue
		}
		d, ok := textmatch.Typos(word, p.tokens[0])
		if !ok || (best >= 0 && d > best) {
			continue
		}
		if d < best || best < 0 {
			best, found = d, nil
		}
		found = addMatch(found, verbMatch{verb: p.verb, consumed: 1, score: 0.8 - 0.1*float64(d)})
	}
	return found
}

func addMatch(found []verbMatch, m verbMatch) []verbMatch {
	for _, f := range found {
		if f.verb == m.verb {
			return found
		}
	}
	return append(found, m)
}
