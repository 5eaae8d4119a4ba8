// Package history keeps an append-only sqlite journal of completed
// moves. It is a read-only record, not an undo mechanism.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Move is one journal entry.
type Move struct {
	MovedAt  time.Time
	Source   string
	Dest     string
	Category string
	ID       int64
}

// Store wraps the journal database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the journal database at dsn and runs pending
// migrations.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	// A single sequential writer; no need for a larger pool.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// RecordMove appends one completed move to the journal.
func (s *Store) RecordMove(ctx context.Context, source, dest, category string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO moves (source, dest, category) VALUES (?, ?, ?)",
		source, dest, category,
	)
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	return nil
}

// Recent returns up to limit journal entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Move, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, dest, category, moved_at FROM moves ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var moves []Move
	for rows.Next() {
		var (
			move    Move
			movedAt int64
		)
		if err := rows.Scan(&move.ID, &move.Source, &move.Dest, &move.Category, &movedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		move.MovedAt = time.Unix(movedAt, 0)
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moves: %w", err)
	}
	return moves, nil
}

// Close closes the journal database.
func (s *Store) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close history database: %w", err)
		}
	}
	return nil
}
