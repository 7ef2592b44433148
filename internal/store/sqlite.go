// Package store keeps the client's local credential cache in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/store/migrations"
)

// ErrNotFound is returned when no credentials are cached for the
// requested email.
var ErrNotFound = errors.New("credentials not found")

// SQLiteStore is the [CredentialStore] implementation backed by a local
// SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at
// dsn and applies the embedded schema migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential cache: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreWithDB wraps an already-open database handle. Migrations
// are not run; intended for tests.
func NewSQLiteStoreWithDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// SaveCredentials implements [CredentialStore].
func (s *SQLiteStore) SaveCredentials(ctx context.Context, email string, loginSalt, secretKey []byte) error {
	query, args, err := sq.
		Insert("credentials").
		Columns("email", "login_salt", "secret_key").
		Values(email, loginSalt, secretKey).
		Suffix("ON CONFLICT(email) DO UPDATE SET login_salt = excluded.login_salt, secret_key = excluded.secret_key").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save credentials query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Credentials implements [CredentialStore].
func (s *SQLiteStore) Credentials(ctx context.Context, email string) ([]byte, []byte, error) {
	query, args, err := sq.
		Select("login_salt", "secret_key").
		From("credentials").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build credentials query: %w", err)
	}

	var loginSalt, secretKey []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&loginSalt, &secretKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query credentials: %w", err)
	}

	return loginSalt, secretKey, nil
}

// Clear implements [CredentialStore].
func (s *SQLiteStore) Clear(ctx context.Context) error {
	query, _, err := sq.Delete("credentials").ToSql()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Close implements [CredentialStore].
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
