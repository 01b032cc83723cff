package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in process memory. Expired entries stay allocated
// until PurgeExpired runs.
type MemoryStore struct {
	// purgeMu lets Set/Delete run concurrently while PurgeExpired counts alone.
	purgeMu sync.RWMutex
	items   *gocache.Cache
}

// NewMemoryStore creates an empty in-process store without a janitor
// goroutine; the scheduler drives purging.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: gocache.New(gocache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	stored, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(stored))
	copy(out, stored)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.purgeMu.RLock()
	defer s.purgeMu.RUnlock()
	// go-cache treats a zero duration as "default"; a non-positive TTL is
	// already expired.
	if ttl <= 0 {
		s.items.Delete(key)
		return nil
	}
	s.items.Set(key, stored, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.purgeMu.RLock()
	defer s.purgeMu.RUnlock()
	s.items.Delete(key)
	return nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	s.purgeMu.Lock()
	defer s.purgeMu.Unlock()

	before := s.items.ItemCount()
	s.items.DeleteExpired()
	return int64(before - s.items.ItemCount()), nil
}

// Len reports the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	return s.items.ItemCount()
}
