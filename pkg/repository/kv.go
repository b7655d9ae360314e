package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KVRepository is a durable string key-value association backed by sqlite
type KVRepository struct {
	db *sqlx.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *sqlx.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns the value for key, found is false if the key is absent
func (r *KVRepository) Get(ctx context.Context, key string) (value string, found bool, err error) {
	err = r.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	err := retryLocked(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	err := retryLocked(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
