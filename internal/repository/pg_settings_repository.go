package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository persists configuration documents keyed by name
// (e.g. "social"). Document shape is whatever the admin tooling last wrote,
// so documents are handled as raw JSON rather than typed records.
type SettingsRepository interface {
	// Get returns the document stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) (json.RawMessage, error)

	// Put replaces (or creates) the document stored under name.
	Put(ctx context.Context, name string, doc json.RawMessage) error
}

// PgSettingsRepository is the PostgreSQL implementation of SettingsRepository,
// storing each document in a JSONB column.
type PgSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPgSettingsRepository creates a PgSettingsRepository backed by the given pool.
func NewPgSettingsRepository(pool *pgxpool.Pool) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool}
}

var _ SettingsRepository = (*PgSettingsRepository)(nil)

func (r *PgSettingsRepository) Get(ctx context.Context, name string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM settings WHERE name = $1`, name,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *PgSettingsRepository) Put(ctx context.Context, name string, doc json.RawMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (name, data) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`,
		name, doc,
	)
	return err
}
