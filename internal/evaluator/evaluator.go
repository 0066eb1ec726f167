// Package evaluator defines the Evaluator interface: something other than
// Go's own if/else that can decide a drill's predicate and pick its message.
//
// main only depends on this interface, so the cross-check does not care
// which engine answers it.
package evaluator

import (
	"context"
	"errors"
	"fmt"

	"github.com/aanand-mishra/conditionals/internal/drill"
)

// ErrMismatch is returned by CrossCheck when the evaluator and the Go
// solutions pick different messages.
var ErrMismatch = errors.New("evaluator disagrees with Go solution")

// Evaluator decides a single predicate.
type Evaluator interface {
	// Evaluate binds arg to the predicate's placeholder and returns yes
	// when it holds, no otherwise.
	Evaluate(ctx context.Context, predicate string, arg any, yes, no string) (string, error)

	Close() error
}

// CrossCheck runs every drill through ev and compares the answer with the
// drill's if/else solution.
func CrossCheck(ctx context.Context, ev Evaluator, drills []drill.Drill) error {
	for _, d := range drills {
		got, err := ev.Evaluate(ctx, d.Predicate, d.Value, d.WhenTrue, d.WhenFalse)
		if err != nil {
			return fmt.Errorf("CrossCheck: %s: %w", d.Title, err)
		}

		if want := d.IfElse(); got != want {
			return fmt.Errorf("CrossCheck: %s (value %v): %w: got %q, want %q",
				d.Title, d.Value, ErrMismatch, got, want)
		}
	}

	return nil
}
