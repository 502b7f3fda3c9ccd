package tokens

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ctabo91/dreamhost-cli/internal/dbx"
)

// Fixed storage keys. The token key matches the web client's storage id so
// both frontends can be pointed at the same conventions.
const (
	tokenKey   = "dreamhost-token"
	savedAtKey = "dreamhost-token-saved-at"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Open opens (creating if necessary) the local state database at dsn and
// ensures the schema exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS session_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init state db schema: %w", err)
	}
	return db, nil
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session_state[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session_state[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, tokenKey)
}

// Save writes the token together with its timestamp in one transaction, so a
// crash mid-write cannot leave a token without its bookkeeping row.
func (r *SQLiteRepository) Save(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, tokenKey, token); err != nil {
			return err
		}
		return r.set(ctx, tx, savedAtKey, time.Now().UTC().Format(time.RFC3339))
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_state`)
	if err != nil {
		return fmt.Errorf("failed to clear session_state: %w", err)
	}
	return nil
}
