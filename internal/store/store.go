// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrAccountExists is returned when an email is already registered.
	ErrAccountExists = errors.New("store: account already exists")
)

// Store wraps SQLite access for local records and offline accounts.
type Store struct {
	db *sql.DB
}

// Account is an offline identity kept in the local database.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	JoinedAt     time.Time
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
	// One logical writer; a single connection keeps sqlite from reporting SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			scope TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (scope, key)
		);`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			joined_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_kv_scope ON kv(scope);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under scope/key.
func (s *Store) Get(ctx context.Context, scope, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE scope = ? AND key = ?`, scope, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set overwrites the value under scope/key.
func (s *Store) Set(ctx context.Context, scope, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		scope, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Remove deletes scope/key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, scope, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE scope = ? AND key = ?`, scope, key)
	return err
}

// RemoveScope deletes every key stored under scope.
func (s *Store) RemoveScope(ctx context.Context, scope string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE scope = ?`, scope)
	return err
}

// Keys lists the keys stored under scope in lexical order.
func (s *Store) Keys(ctx context.Context, scope string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv WHERE scope = ? ORDER BY key ASC`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// CreateAccount stores a new offline account. Email must be unique.
func (s *Store) CreateAccount(ctx context.Context, acc Account) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, name, password_hash, joined_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO NOTHING`,
		acc.ID,
		acc.Email,
		acc.Name,
		acc.PasswordHash,
		acc.JoinedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountExists
	}
	return nil
}

// AccountByEmail looks up an offline account.
func (s *Store) AccountByEmail(ctx context.Context, email string) (Account, error) {
	var acc Account
	var joinedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, joined_at FROM accounts WHERE email = ?`, email).
		Scan(&acc.ID, &acc.Email, &acc.Name, &acc.PasswordHash, &joinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, joinedAt)
	if err != nil {
		return Account{}, err
	}
	acc.JoinedAt = parsed
	return acc, nil
}

// DeleteAccount removes an offline account and everything stored under its id.
func (s *Store) DeleteAccount(ctx context.Context, id string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rerr))
			}
		}
	}()
	res, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		err = ErrNotFound
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE scope = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
