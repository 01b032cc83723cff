package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"productcatalog/clock"
)

// SQLStore keeps entries in the cache_entries table so every process sharing
// the database sees the same cache.
type SQLStore struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLStore creates a store over db. A nil clock uses wall time.
func NewSQLStore(db *sql.DB, c clock.Clock) *SQLStore {
	if c == nil {
		c = clock.NewRealClock()
	}
	return &SQLStore{db: db, clock: c}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     []byte
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM cache_entries WHERE cache_key = ?", key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if s.clock.Now().Unix() >= expiresAt {
		return nil, false, nil
	}
	return value, true, nil
}

// Set replaces any existing entry. Expiry is stored with second precision.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := s.clock.Now().Add(ttl).Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cache_entries WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("failed to replace cache entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO cache_entries (cache_key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt,
	); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return tx.Commit()
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (s *SQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM cache_entries WHERE expires_at <= ?", s.clock.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache entries: %w", err)
	}
	return result.RowsAffected()
}
