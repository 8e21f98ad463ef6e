// Package store persists credential entries in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/keyclip-go/internal/domain"
	"github.com/doeshing/keyclip-go/internal/ports"
)

// SQLiteStore keeps entries and their ordered attributes in a SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open creates (or opens) the database at path and ensures the schema exists.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s := &SQLiteStore{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS attributes (
			entry_id INTEGER NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			protected INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL,
			PRIMARY KEY (entry_id, key)
		);`)
	return err
}

// FindEntryByPath returns the entry at path, or (nil, nil) when absent.
// Attributes come back in their stored order.
func (s *SQLiteStore) FindEntryByPath(ctx context.Context, path string) (*domain.Entry, error) {
	var (
		id                  int64
		title, created, upd string
	)
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, created_at, updated_at FROM entries WHERE path = ?", path)
	if err := row.Scan(&id, &title, &created, &upd); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	entry := domain.NewEntry(path)
	entry.Title = title
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		entry.Created = t
	}
	if t, err := time.Parse(time.RFC3339, upd); err == nil {
		entry.Updated = t
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value, protected FROM attributes WHERE entry_id = ? ORDER BY position", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key, value string
			protected  int
		)
		if err := rows.Scan(&key, &value, &protected); err != nil {
			return nil, err
		}
		entry.Attributes.Set(key, value, protected == 1)
	}
	return entry, rows.Err()
}

// Save upserts an entry and replaces its attribute set, keeping the order of
// entry.Attributes as the stored position.
func (s *SQLiteStore) Save(ctx context.Context, entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Format(time.RFC3339)
	created := now
	if !entry.Created.IsZero() {
		created = entry.Created.Format(time.RFC3339)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO entries (path, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at`,
		entry.Path, entry.Title, created, now); err != nil {
		return err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM entries WHERE path = ?", entry.Path).Scan(&id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM attributes WHERE entry_id = ?", id); err != nil {
		return err
	}
	for i, attr := range entry.Attributes.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO attributes (entry_id, key, value, protected, position) VALUES (?, ?, ?, ?, ?)",
			id, attr.Key, attr.Value, boolToInt(attr.Protected), i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the entry at path. Deleting a missing entry is an error.
func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE path = ?", path)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.EntryNotFoundError{Path: path}
	}
	_, err = s.db.ExecContext(ctx,
		"DELETE FROM attributes WHERE entry_id NOT IN (SELECT id FROM entries)")
	return err
}

// List returns all entry paths in lexical order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path FROM entries ORDER BY path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.EntryStore = (*SQLiteStore)(nil)
