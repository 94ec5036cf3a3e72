// Package store handles SQLite persistence for the practice text library.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuit/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when no text has the requested name.
var ErrNotFound = errors.New("text not found")

// Store wraps SQLite access for saved texts.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS texts (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			added_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// PutText saves body under name, replacing any existing text.
func (s *Store) PutText(ctx context.Context, name, body string, addedAt time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("text name is empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO texts (name, body, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, added_at = excluded.added_at`,
		name,
		body,
		addedAt.Format(time.RFC3339Nano),
	)
	return err
}

// GetText returns the text saved under name.
func (s *Store) GetText(ctx context.Context, name string) (model.TextEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT name, body, added_at FROM texts WHERE name = ?`, name)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TextEntry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return entry, err
}

// ListTexts returns every saved text ordered by name.
func (s *Store) ListTexts(ctx context.Context) ([]model.TextEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, body, added_at FROM texts ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.TextEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteText removes the text saved under name.
func (s *Store) DeleteText(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (model.TextEntry, error) {
	var entry model.TextEntry
	var addedAt string
	if err := sc.Scan(&entry.Name, &entry.Body, &addedAt); err != nil {
		return model.TextEntry{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, addedAt)
	if err != nil {
		return model.TextEntry{}, err
	}
	entry.AddedAt = parsed
	return entry, nil
}
