package cache

import (
	"context"
	"encoding/json"
	"time"

	"productcatalog/logger"
)

// Store is a byte-oriented key/value cache with per-entry TTL.
type Store interface {
	// Get returns the value for key. ok is false when the key is missing or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// PurgeExpired removes expired entries and reports how many were dropped.
	PurgeExpired(ctx context.Context) (int64, error)
}

// Remember returns the cached value for key or computes, stores and returns it.
// Cache failures are logged and never returned; only compute errors are.
func Remember[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if store != nil {
		raw, ok, err := store.Get(ctx, key)
		switch {
		case err != nil:
			logger.WithFields(map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			}).Warn("Cache read failed")
		case ok:
			var cached T
			err := json.Unmarshal(raw, &cached)
			if err == nil {
				logger.WithFields(map[string]interface{}{"key": key}).Debug("Cache hit")
				return cached, nil
			}
			logger.WithFields(map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			}).Warn("Cached value could not be decoded")
		}
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if store != nil {
		raw, err := json.Marshal(value)
		if err != nil {
			logger.WithFields(map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			}).Warn("Value could not be encoded for cache")
			return value, nil
		}
		if err := store.Set(ctx, key, raw, ttl); err != nil {
			logger.WithFields(map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			}).Warn("Cache write failed")
		}
	}

	return value, nil
}
