package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS session_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Migrate creates the session table when it does not exist.
func (r *PGRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, createSessionTable)
	return err
}

func (r *PGRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.DB.GetContext(ctx, &value, `SELECT value FROM session_entries WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *PGRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO session_entries (key, value, updated_at)
		VALUES (:key, :value, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]interface{}{
		"key":   key,
		"value": value,
	})
	return err
}

func (r *PGRepository) Delete(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM session_entries WHERE key = $1`, key)
	return err
}
