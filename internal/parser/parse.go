package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/appengine-ltd/stormfront/internal/textmatch"
	"github.com/appengine-ltd/stormfront/internal/world"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// Parse resolves one line of input against what the explorer can see.
// Anything it cannot resolve comes back with a Clarify question instead of
// a guess.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{Raw: raw, Kind: Unknown}
	if strings.TrimSpace(raw) == "?" {
		return Intent{Raw: raw, Kind: Help, Verb: "help", Confidence: 1}
	}
	normalised := normaliseInput(raw)
	tokens := strings.Fields(normalised)
	if len(tokens) == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for a list."}
		return intent
	}

	matches := matchVerb(tokens)
	if len(matches) > 1 {
		opts := make([]Intent, 0, len(matches))
		for _, m := range matches {
			opts = append(opts, Intent{Kind: m.verb.kind, Verb: m.verb.name, Confidence: m.score})
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: opts}
		return intent
	}
	if len(matches) == 1 {
		m := matches[0]
		intent.Verb, intent.Kind, intent.Confidence = m.verb.name, m.verb.kind, m.score
		return resolveArgs(ctx, m.verb, tokens[m.consumed:], intent)
	}

	if d, ok := world.ParseDirection(normalised); ok {
		return Intent{Raw: raw, Kind: Command, Verb: "go", Args: []string{d.Name}, Confidence: 0.95}
	}
	if v, ok := inferFreeText(normalised); ok {
		intent.Verb, intent.Kind, intent.Confidence = v.name, v.kind, 0.85
		return resolveArgs(ctx, v, nil, intent)
	}

	intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("I don't know how to %q. Type help for a list.", normalised)}
	return intent
}

func resolveArgs(ctx ParseContext, v *verb, args []string, intent Intent) Intent {
	var words []string
scan:
	for _, t := range args {
		switch {
		case isFiller(t):
		case isJoiner(t):
			if len(words) > 0 {
				break scan
			}
		case isPronoun(t):
			if strings.TrimSpace(ctx.LastEntity) == "" {
				return clarify(intent, fmt.Sprintf("What does %q refer to?", t))
			}
			words = append(words, strings.Fields(normaliseInput(ctx.LastEntity))...)
		default:
			words = append(words, t)
		}
	}

	switch v.args {
	case noArgs:
		if len(words) > 0 {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  fmt.Sprintf("%s takes no arguments. Did you mean:", v.name),
				Options: []Intent{{Kind: v.kind, Verb: v.name, Confidence: intent.Confidence}},
			}
		}
		return intent
	case anyArgs:
		return intent
	case turns:
		for _, w := range words {
			if w == "for" || w == "turn" || w == "turns" {
				continue
			}
			q, ok := parseTurns(w)
			if !ok || intent.Quantity != nil {
				return clarify(intent, fmt.Sprintf("%s takes a number of turns, as in %s 3.", v.name, v.name))
			}
			intent.Quantity = q
		}
		return intent
	case direction:
		if len(words) == 0 {
			return clarify(intent, "Which way? "+directionList())
		}
		d, ok := world.ParseDirection(strings.Join(words, " "))
		if !ok {
			return clarify(intent, fmt.Sprintf("%q is not a direction. %s", strings.Join(words, " "), directionList()))
		}
		intent.Args = []string{d.Name}
		return intent
	}

	var pool []string
	switch v.args {
	case creature:
		pool = ctx.Creatures
	case itemHere:
		pool = ctx.Nearby
	case carried:
		pool = slices.Concat(ctx.Inventory, ctx.Nearby)
	case coating:
		pool = Coatings
	}
	pool = normaliseAll(pool)

	if len(words) == 0 {
		if v.optional {
			return intent
		}
		if len(pool) == 0 {
			return clarify(intent, fmt.Sprintf("There is nothing here to %s.", v.name))
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("What should I %s?", v.name), Options: options(v, pool)}
		return intent
	}

	found, score := resolveEntity(words, pool)
	switch len(found) {
	case 0:
		intent.Args = []string{strings.Join(words, " ")}
		intent.Confidence *= 0.7
	case 1:
		intent.Args = found
		intent.Confidence *= score
	default:
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Which do you mean to %s?", v.name), Options: options(v, found)}
	}
	return intent
}

func clarify(intent Intent, prompt string) Intent {
	intent.Clarify = &ClarifyQuestion{Prompt: prompt}
	return intent
}

func options(v *verb, names []string) []Intent {
	out := make([]Intent, 0, len(names))
	for _, n := range names {
		out = append(out, Intent{Kind: v.kind, Verb: v.name, Args: []string{n}, Confidence: 0.88})
	}
	return out
}

func directionList() string {
	names := make([]string, 0, len(world.Directions))
	for _, d := range world.Directions {
		names = append(names, d.Name)
	}
	return "Try " + strings.Join(names, ", ") + "."
}

// resolveEntity finds the names in pool that words refer to. An exact name
// wins outright; otherwise a prefix or a whole word of a name ("wood" for
// "wood bundle"), then a tolerated typo. Several hits are all returned.
func resolveEntity(words []string, pool []string) ([]string, float64) {
	for span := len(words); span >= 1; span-- {
		if s := strings.Join(words[:span], " "); slices.Contains(pool, s) {
			return []string{s}, 1
		}
	}
	phrase, head := strings.Join(words, " "), words[0]

	var hits []string
	for _, c := range pool {
		if (len(phrase) >= 3 && strings.HasPrefix(c, phrase)) || slices.Contains(strings.Fields(c), head) {
			hits = append(hits, c)
		}
	}
	if len(hits) > 0 {
		return hits, 0.9
	}
	for _, c := range pool {
		if textmatch.Near(phrase, c) || textmatch.Near(head, c) {
			hits = append(hits, c)
		}
	}
	return hits, 0.75
}

func normaliseAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normaliseInput(v); n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// IntentToCommandString renders an intent back as the command that would produce it.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	parts := []string{verb}
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			parts = append(parts, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		parts = append(parts, intent.Quantity.Raw)
	}
	return strings.Join(parts, " ")
}
