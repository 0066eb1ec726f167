package drill

import (
	"errors"
	"fmt"
	"io"

	"github.com/aanand-mishra/conditionals/internal/config"
	"github.com/aanand-mishra/conditionals/internal/types"
)

// ErrStylesDisagree is returned by Run when the two solutions of a drill
// pick different messages for the same value.
var ErrStylesDisagree = errors.New("if/else and conditional disagree")

// Drill is one exercise bound to its input value.
//
// IfElse and Conditional close over the value, so Run does not need to
// know the type of each drill's input.
type Drill struct {
	Title string

	// Value is the literal being checked, kept for logging.
	Value any

	IfElse      func() string
	Conditional func() string

	// WhenTrue / WhenFalse are the two possible messages.
	WhenTrue  string
	WhenFalse string

	// Predicate is the same check written as a SQL boolean expression
	// over a single ? placeholder, bound to Value. Used by the cross-check.
	Predicate string
}

// Drills returns the five drills, in order, bound to the values in v.
func Drills(v config.DrillValues) []Drill {
	return []Drill{
		{
			Title:       "Age check",
			Value:       v.Age,
			IfElse:      func() string { return AgeIfElse(v.Age) },
			Conditional: func() string { return AgeConditional(v.Age) },
			WhenTrue:    MsgEligible,
			WhenFalse:   MsgNotEligible,
			Predicate:   fmt.Sprintf("? > %d", VotingAge),
		},
		{
			Title:       "Number sign",
			Value:       v.Number,
			IfElse:      func() string { return SignIfElse(v.Number) },
			Conditional: func() string { return SignConditional(v.Number) },
			WhenTrue:    MsgNegative,
			WhenFalse:   MsgPositive,
			Predicate:   "? < 0",
		},
		{
			Title:       "Password length",
			Value:       v.Password,
			IfElse:      func() string { return PasswordIfElse(v.Password) },
			Conditional: func() string { return PasswordConditional(v.Password) },
			WhenTrue:    MsgStrongPassword,
			WhenFalse:   MsgPasswordTooShort,
			// SQLite's length() counts characters for TEXT values but stops
			// at the first NUL, so NULs are swapped for a space first.
			Predicate: fmt.Sprintf("length(replace(?, char(0), ' ')) >= %d", MinPasswordLength),
		},
		{
			Title:       "Even or odd",
			Value:       v.Num,
			IfElse:      func() string { return ParityIfElse(v.Num) },
			Conditional: func() string { return ParityConditional(v.Num) },
			WhenTrue:    MsgEven,
			WhenFalse:   MsgOdd,
			Predicate:   "? % 2 = 0",
		},
		{
			Title:       "Login status",
			Value:       v.IsLoggedIn,
			IfElse:      func() string { return LoginIfElse(v.IsLoggedIn) },
			Conditional: func() string { return LoginConditional(v.IsLoggedIn) },
			WhenTrue:    MsgWelcomeBack,
			WhenFalse:   MsgPleaseLogIn,
			Predicate:   "?",
		},
	}
}

// Run evaluates every drill in order and writes one line per solution:
// the if/else line first, the conditional line right after it, so the
// two can be compared by eye.
//
// It returns the outcomes that were printed. It stops at the first drill
// whose solutions disagree, or at the first write error.
func Run(w io.Writer, drills []Drill) ([]types.Outcome, error) {
	outcomes := make([]types.Outcome, 0, 2*len(drills))

	for _, d := range drills {
		ifElse := d.IfElse()
		conditional := d.Conditional()

		if ifElse != conditional {
			return outcomes, fmt.Errorf("%s (value %v): %w: %q vs %q",
				d.Title, d.Value, ErrStylesDisagree, ifElse, conditional)
		}

		for _, o := range []types.Outcome{
			{Drill: d.Title, Style: types.StyleIfElse, Message: ifElse},
			{Drill: d.Title, Style: types.StyleConditional, Message: conditional},
		} {
			if _, err := fmt.Fprintln(w, o.Message); err != nil {
				return outcomes, fmt.Errorf("drill.Run: write %s: %w", d.Title, err)
			}
			outcomes = append(outcomes, o)
		}
	}

	return outcomes, nil
}
