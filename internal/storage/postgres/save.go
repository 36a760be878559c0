package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cory-johannsen/wonders/internal/storage"
)

// SaveRepository stores snapshots in the saves table.
//
// SaveRepository implements storage.Store. Values must be JSON documents.
type SaveRepository struct {
	pool *Pool
}

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: pool must be open and the saves migration applied.
func NewSaveRepository(pool *Pool) *SaveRepository {
	return &SaveRepository{pool: pool}
}

// Get returns the snapshot stored under key.
func (r *SaveRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.pool.Conn().QueryRow(ctx, `SELECT data FROM saves WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %q: %w", key, err)
	}
	return data, nil
}

// Put upserts the snapshot under key.
//
// Postcondition: updated_at reflects the write time.
func (r *SaveRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Conn().Exec(ctx, `
		INSERT INTO saves (key, data, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("writing save %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key.
func (r *SaveRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Conn().Exec(ctx, `DELETE FROM saves WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting save %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying pool.
func (r *SaveRepository) Close() error {
	r.pool.Close()
	return nil
}
