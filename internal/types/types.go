// Package types holds the small data structures shared across the
// application. Keeping them in one place prevents import cycles: the drill
// package, the evaluator and main can all import types without depending
// on each other.
package types

// Style names one of the two ways a drill is written.
type Style string

const (
	// StyleIfElse is the branching-statement solution: if { ... } else { ... }
	StyleIfElse Style = "if/else"

	// StyleConditional is the conditional-expression solution: a single
	// expression that yields one of two values.
	StyleConditional Style = "conditional"
)

// Outcome is one printed line: which drill produced it, in which style,
// and the message that was selected.
type Outcome struct {
	Drill   string `json:"drill"`
	Style   Style  `json:"style"`
	Message string `json:"message"`
}
