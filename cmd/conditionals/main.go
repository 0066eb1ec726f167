// main runs the five conditional-logic drills.
//
// SEQUENCE:
//  1. Load configuration (defaults, optional YAML file, env overrides)
//  2. Initialise the logger
//  3. Print every drill twice: if/else solution, then conditional solution
//  4. Optionally cross-check each drill against a SQL CASE expression
//
// RUNNING:
//
//	go run ./cmd/conditionals
//	go run ./cmd/conditionals --config=config/local.yaml
//	DRILL_AGE=18 go run ./cmd/conditionals
//
// Stdout only ever carries the drill lines; logs go to stderr.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aanand-mishra/conditionals/internal/config"
	"github.com/aanand-mishra/conditionals/internal/drill"
	"github.com/aanand-mishra/conditionals/internal/evaluator"
	"github.com/aanand-mishra/conditionals/internal/evaluator/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, os.Stderr)

	if err := run(cfg, os.Stdout, log); err != nil {
		log.Error("drills failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run prints the drills to out and, when enabled, cross-checks them.
func run(cfg *config.Config, out io.Writer, log *slog.Logger) error {
	log.Debug("running drills",
		slog.Int("age", cfg.Age),
		slog.Int("number", cfg.Number),
		slog.Int("password_length", len([]rune(cfg.Password))),
		slog.Int("num", cfg.Num),
		slog.Bool("is_logged_in", cfg.IsLoggedIn),
	)

	drills := drill.Drills(cfg.DrillValues)

	outcomes, err := drill.Run(out, drills)
	if err != nil {
		return err
	}

	log.Debug("drills printed", slog.Int("lines", len(outcomes)))

	if !cfg.CrossCheck {
		return nil
	}

	ev, err := sqlite.New(":memory:")
	if err != nil {
		return err
	}
	defer ev.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := evaluator.CrossCheck(ctx, ev, drills); err != nil {
		return err
	}

	log.Info("cross-check passed", slog.Int("drills", len(drills)))

	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
}
