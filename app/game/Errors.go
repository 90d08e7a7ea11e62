package game

// ErrorKind categorizes why a command was rejected.
type ErrorKind int

const (
	// Authorization: unknown actor or acting out of turn.
	Authorization ErrorKind = iota
	// State: the command does not apply to the current game state
	// (no pending trade, already rolled, already mortgaged, ...).
	State
	// Insufficiency: not enough money, or not enough total assets.
	Insufficiency
	// Structural: incomplete color group, building caps, encumbered
	// property in a trade, negative quantities.
	Structural
)

func (k ErrorKind) String() string {
	switch k {
	case Authorization:
		return "authorization"
	case State:
		return "state"
	case Insufficiency:
		return "insufficiency"
	case Structural:
		return "structural"
	}
	return "unknown"
}

// RuleError is a rejected command. The engine performs no mutation on a
// rejection and has already sent the explanation through the notifier;
// callers can branch on Kind without parsing the message.
type RuleError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// reject notifies the chat and returns the typed rejection.
func (g *Game) reject(kind ErrorKind, message string) error {
	g.notify(message)
	return &RuleError{Kind: kind, Message: message}
}
