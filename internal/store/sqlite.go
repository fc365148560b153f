// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	createCredentialsTable = `
		CREATE TABLE IF NOT EXISTS credentials (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	getCredential = `
		SELECT value FROM credentials WHERE key = ?;`

	setCredential = `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	removeCredential = `
		DELETE FROM credentials WHERE key = ?;`
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the credential database at path
// and ensures the credentials table exists. Pass ":memory:" for an ephemeral
// store.
func NewSQLiteStore(path string) (CredentialStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	if _, err = db.Exec(createCredentialsTable); err != nil {
		return nil, fmt.Errorf("init credential db: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// newSQLiteStoreWithDB wraps an existing database handle. Used by tests to
// substitute a mocked *sql.DB.
func newSQLiteStoreWithDB(db *sql.DB) *sqliteStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getCredential, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credential %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, setCredential, key, value); err != nil {
		return fmt.Errorf("set credential %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) RemoveMany(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("remove credentials: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, key := range keys {
		if _, err = tx.ExecContext(ctx, removeCredential, key); err != nil {
			return fmt.Errorf("remove credential %q: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("remove credentials commit: %w", err)
	}
	return nil
}
