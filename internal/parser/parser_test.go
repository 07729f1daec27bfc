package parser

import (
	"strings"
	"testing"
)

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  INVENTRY  ", want: "inventry"},
		{in: "pick-up   WOOD!!", want: "pick up wood"},
		{in: "go   N", want: "go n"},
		{in: "talk to the Storm Seer's", want: "talk to the storm seer s"},
		{in: "what's the weather?", want: "what s the weather"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasInvMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inv")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoInventryMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inventry")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestTypoAttackResolvesCreature(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Creatures: []string{"Wolf", "Deer"}}, "attak wolf")
	if intent.Verb != "attack" {
		t.Fatalf("expected attack verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "wolf" {
		t.Fatalf("expected wolf target, got %+v", intent.Args)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestPrefixPicksTheOnlyVerb(t *testing.T) {
	p := New()
	for raw, want := range map[string]string{"inve": "inventory", "sle": "sleep", "camp": "campfire", "wiel axe": "wield"} {
		intent := p.Parse(ParseContext{Inventory: []string{"Axe"}}, raw)
		if intent.Clarify != nil || intent.Verb != want {
			t.Fatalf("%q: expected %s, got %q (clarify %+v)", raw, want, intent.Verb, intent.Clarify)
		}
	}
}

func TestSharedPrefixAsks(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "hea")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected a choice between health and head, got %+v", intent.Clarify)
	}
}

func TestUnknownWordsAreNotGuessed(t *testing.T) {
	p := New()
	for _, raw := range []string{"flee", "seat", "sweet", "dance with wolf", "xyz"} {
		intent := p.Parse(ParseContext{Creatures: []string{"Wolf"}}, raw)
		if intent.Clarify == nil {
			t.Fatalf("%q: expected clarify, got verb %q args %+v", raw, intent.Verb, intent.Args)
		}
		if intent.Verb != "" {
			t.Fatalf("%q: expected no verb, got %q", raw, intent.Verb)
		}
	}
}

func TestEatAndDrink(t *testing.T) {
	p := New()
	ctx := ParseContext{Inventory: []string{"Axe", "Bottle", "Apple", "Hazelnut"}}

	intent := p.Parse(ctx, "eat apple")
	if intent.Verb != "eat" || intent.Clarify != nil {
		t.Fatalf("expected eat, got %q (clarify %+v)", intent.Verb, intent.Clarify)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "apple" {
		t.Fatalf("expected apple, got %+v", intent.Args)
	}

	intent = p.Parse(ctx, "consume the hazelnut")
	if intent.Verb != "eat" || len(intent.Args) != 1 || intent.Args[0] != "hazelnut" {
		t.Fatalf("expected eat hazelnut, got %q %+v", intent.Verb, intent.Args)
	}

	intent = p.Parse(ctx, "drink")
	if intent.Verb != "drink" || intent.Clarify != nil || len(intent.Args) != 0 {
		t.Fatalf("expected a bare drink, got %q %+v (clarify %+v)", intent.Verb, intent.Args, intent.Clarify)
	}

	intent = p.Parse(ctx, "drink water")
	if intent.Verb != "drink" || len(intent.Args) != 1 || intent.Args[0] != "water" {
		t.Fatalf("expected drink water, got %q %+v", intent.Verb, intent.Args)
	}

	intent = p.Parse(ctx, "I'm so thirsty")
	if intent.Verb != "drink" {
		t.Fatalf("expected thirst to mean drink, got %q", intent.Verb)
	}

	intent = p.Parse(ctx, "eat")
	if intent.Clarify == nil || !strings.HasPrefix(intent.Clarify.Prompt, "What should I eat?") {
		t.Fatalf("expected eat to ask what, got %+v", intent.Clarify)
	}
}

func TestVerbsWithoutArgumentsRejectThem(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "steam apple")
	if intent.Clarify == nil || !strings.Contains(intent.Clarify.Prompt, "takes no arguments") {
		t.Fatalf("expected steam apple to be rejected, got %+v", intent)
	}
	if len(intent.Clarify.Options) != 1 || intent.Clarify.Options[0].Verb != "steam" {
		t.Fatalf("expected the bare verb as the only option, got %+v", intent.Clarify.Options)
	}

	intent = p.Parse(ParseContext{}, "look around")
	if intent.Verb != "look" || intent.Clarify != nil {
		t.Fatalf("expected look to accept trailing words, got %+v", intent)
	}
}

func TestInScopeItemResolvesByWord(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Nearby: []string{"Wood Bundle", "Yew Berry"},
	}
	intent := p.Parse(ctx, "pick up wood")
	if intent.Verb != "take" {
		t.Fatalf("expected take verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "wood bundle" {
		t.Fatalf("expected first arg wood bundle, got %+v", intent.Args)
	}
}

func TestAmbiguityReturnsClarify(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Creatures: []string{"Wolf", "Deer"},
	}
	intent := p.Parse(ctx, "attack")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less attack")
	}
	if len(intent.Clarify.Options) < 2 {
		t.Fatalf("expected at least 2 clarify options, got %d", len(intent.Clarify.Options))
	}

	intent = p.Parse(ParseContext{}, "attack")
	if intent.Clarify == nil || intent.Clarify.Prompt != "There is nothing here to attack." {
		t.Fatalf("expected nothing to attack, got %+v", intent.Clarify)
	}
}

func TestFreeTextBagInference(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "i need to check my bag")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory inference, got %q", intent.Verb)
	}
}

func TestBuildCampfirePhrases(t *testing.T) {
	p := New()
	for _, raw := range []string{"build campfire", "campfire", "light fire", "I'm freezing"} {
		intent := p.Parse(ParseContext{}, raw)
		if intent.Verb != "campfire" || intent.Clarify != nil {
			t.Fatalf("%q: expected campfire, got %q (clarify %+v)", raw, intent.Verb, intent.Clarify)
		}
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "go ne", want: "north-east"},
		{in: "walk north east", want: "north-east"},
		{in: "go southwest", want: "south-west"},
		{in: "n", want: "north"},
		{in: "head w", want: "west"},
		{in: "go to the north", want: "north"},
	}
	p := New()
	for _, tc := range tests {
		intent := p.Parse(ParseContext{}, tc.in)
		if intent.Verb != "go" {
			t.Fatalf("%q: expected go, got %q", tc.in, intent.Verb)
		}
		if len(intent.Args) != 1 || intent.Args[0] != tc.want {
			t.Fatalf("%q: expected %s, got %+v", tc.in, tc.want, intent.Args)
		}
	}

	intent := p.Parse(ParseContext{}, "go up")
	if intent.Clarify == nil || !strings.HasPrefix(intent.Clarify.Prompt, `"up" is not a direction.`) {
		t.Fatalf("expected go up to be rejected, got %+v", intent.Clarify)
	}
}

func TestCoatResolvesCoating(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Inventory: []string{"Axe", "Yew Berry"}}, "smear yew berry on axe")
	if intent.Verb != "coat" {
		t.Fatalf("expected coat verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "yew berry" {
		t.Fatalf("expected yew berry coating, got %+v", intent.Args)
	}

	for _, raw := range []string{"coat snow", "coat axe with snow"} {
		intent = p.Parse(ParseContext{}, raw)
		if len(intent.Args) == 0 || intent.Args[0] != "snow" {
			t.Fatalf("%q: expected snow coating, got %+v", raw, intent.Args)
		}
	}
}

func TestTalkSkipsFillerWords(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Creatures: []string{"Storm Seer"}}, "talk to the storm seer")
	if intent.Verb != "talk" {
		t.Fatalf("expected talk verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "storm seer" {
		t.Fatalf("expected storm seer, got %+v", intent.Args)
	}

	intent = p.Parse(ParseContext{}, "talk")
	if intent.Verb != "talk" || intent.Clarify != nil {
		t.Fatalf("expected a bare talk, got %+v", intent)
	}
}

func TestWaitQuantity(t *testing.T) {
	p := New()
	for _, raw := range []string{"wait 3", "wait for 3 turns", "z 3x"} {
		intent := p.Parse(ParseContext{}, raw)
		if intent.Verb != "wait" {
			t.Fatalf("%q: expected wait verb, got %q", raw, intent.Verb)
		}
		if intent.Quantity == nil || intent.Quantity.N != 3 {
			t.Fatalf("%q: expected quantity 3, got %+v", raw, intent.Quantity)
		}
	}
	if intent := p.Parse(ParseContext{}, "wait forever"); intent.Clarify == nil {
		t.Fatalf("expected wait forever to ask for a number")
	}
}

func TestPronounResolutionAttackIt(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Creatures:  []string{"Wolf"},
		LastEntity: "wolf",
	}
	intent := p.Parse(ctx, "attack it")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "wolf" {
		t.Fatalf("expected pronoun to resolve to wolf, got %+v", intent.Args)
	}

	ctx.LastEntity = ""
	if intent := p.Parse(ctx, "attack it"); intent.Clarify == nil {
		t.Fatalf("expected clarify without a last entity")
	}
}

func TestQueryKinds(t *testing.T) {
	p := New()
	for raw, want := range map[string]IntentKind{"status": Query, "sky": Query, "look": Query, "help": Help, "?": Help, "sleep": Command} {
		if got := p.Parse(ParseContext{}, raw).Kind; got != want {
			t.Fatalf("%q: expected kind %d, got %d", raw, want, got)
		}
	}
}

func TestIntentToCommandString(t *testing.T) {
	got := IntentToCommandString(Intent{Verb: "go", Args: []string{"north-east"}})
	if got != "go north east" {
		t.Fatalf("expected %q, got %q", "go north east", got)
	}
	got = IntentToCommandString(Intent{Verb: "wait", Quantity: &Quantity{Raw: "3", N: 3}})
	if got != "wait 3" {
		t.Fatalf("expected %q, got %q", "wait 3", got)
	}
}
