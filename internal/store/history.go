// Package store persists the log of completed moves.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Move is one recorded relocation.
type Move struct {
	ID          string
	Name        string
	Source      string
	Destination string
	Category    string
	Backend     string
	MovedAt     time.Time
}

// Recorder is the write side used by the movers.
type Recorder interface {
	Record(ctx context.Context, m Move) error
}

// HistoryStore implements move history on sqlite.
type HistoryStore struct {
	db *sql.DB
}

const movesSchema = `
CREATE TABLE IF NOT EXISTS moves (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	source TEXT NOT NULL,
	destination TEXT NOT NULL,
	category TEXT NOT NULL,
	backend TEXT NOT NULL,
	moved_at DATETIME NOT NULL
);`

// NewHistoryStore opens (creating if needed) the history database at path.
func NewHistoryStore(path string) (*HistoryStore, error) {
	if path == "" {
		return nil, errors.New("history database path cannot be empty")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(movesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create moves table: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// Record inserts one move. A missing ID or timestamp is filled in.
func (s *HistoryStore) Record(ctx context.Context, m Move) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.MovedAt.IsZero() {
		m.MovedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO moves (id, name, source, destination, category, backend, moved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Source, m.Destination, m.Category, m.Backend, m.MovedAt)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	return nil
}

// List returns the most recent moves, newest first. limit <= 0 means no limit.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]Move, error) {
	q := `SELECT id, name, source, destination, category, backend, moved_at
	      FROM moves ORDER BY moved_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.ID, &m.Name, &m.Source, &m.Destination, &m.Category, &m.Backend, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}

// Ping checks the database connection.
func (s *HistoryStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
