// Package sqlite implements evaluator.Evaluator on top of SQLite.
//
// Each predicate becomes the condition of a SQL CASE expression, which is
// SQL's own conditional expression:
//
//	SELECT CASE WHEN ? > 18 THEN ? ELSE ? END
//
// Use the ":memory:" DSN: nothing is ever created or written, the
// database only evaluates expressions.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of evaluator.Evaluator.
type SQLite struct {
	Db *sql.DB
}

// New opens the database at dsn and checks that it answers.
func New(dsn string) (*SQLite, error) {
	// sql.Open only validates the driver name; Ping makes the first
	// real connection so a broken driver fails here and not mid-run.
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every ":memory:" connection is its own database. One connection
	// keeps the pool from opening more than needed.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: ping: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Evaluate runs the predicate as a CASE expression.
//
// The argument order matches the ? order in the SQL: arg first (inside
// the predicate), then the THEN and ELSE values. predicate must contain
// exactly one ? and comes from the drill table, never from user input.
func (s *SQLite) Evaluate(ctx context.Context, predicate string, arg any, yes, no string) (string, error) {
	query := fmt.Sprintf("SELECT CASE WHEN %s THEN ? ELSE ? END", predicate)

	var msg string
	if err := s.Db.QueryRowContext(ctx, query, arg, yes, no).Scan(&msg); err != nil {
		return "", fmt.Errorf("Evaluate: %s: %w", predicate, err)
	}

	return msg, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
