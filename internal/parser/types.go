package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Intent is one parsed line of player input. When Clarify is set the line
// could not be resolved and nothing should be executed.
type Intent struct {
	Raw        string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

// Quantity is a turn count, as in "wait 3".
type Quantity struct {
	Raw string
	N   int
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext is what the explorer can currently see and reach.
type ParseContext struct {
	Inventory  []string
	Nearby     []string
	Creatures  []string
	LastEntity string
}
