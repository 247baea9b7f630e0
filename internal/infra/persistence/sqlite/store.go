// Package sqlite persists keys as rows of a single table in an embedded
// SQLite database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"agrox/internal/domain/repository"
	"agrox/internal/errors"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`
	selectSQL = `SELECT value FROM kv WHERE key = ?`
	upsertSQL = `INSERT INTO kv(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteSQL = `DELETE FROM kv WHERE key = ?`
)

// Store is a KeyValueStore over one SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the table exists.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "create sqlite dir for %q", path)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %q", path)
	}
	// one connection keeps :memory: databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "create kv table")
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, selectSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertSQL, key, value)

	return errors.WithStack(err)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteSQL, key)

	return errors.WithStack(err)
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.WithStack(s.db.PingContext(ctx))
}

func (s *Store) Close() error {
	return s.db.Close()
}
