package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/cache"
	"productcatalog/clock"
	"productcatalog/testutil"
)

func TestPurgeExpiredCache(t *testing.T) {
	ctx := context.Background()
	mc := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := cache.NewSQLStore(testutil.NewDB(t), mc)
	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Hour))

	mc.Advance(5 * time.Minute)
	assert.Equal(t, int64(1), PurgeExpiredCache(ctx, store))

	_, ok, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), PurgeExpiredCache(ctx, store))
}

type countingStore struct {
	cache.Store
	purges atomic.Int32
	err    error
}

func (s *countingStore) PurgeExpired(context.Context) (int64, error) {
	s.purges.Add(1)
	return 0, s.err
}

func TestPurgeExpiredCache_StoreError(t *testing.T) {
	store := &countingStore{err: errors.New("db down")}
	assert.Equal(t, int64(0), PurgeExpiredCache(context.Background(), store))
}

func TestStartScheduler_RunsUntilCancelled(t *testing.T) {
	store := &countingStore{}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartScheduler(ctx, store, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return store.purges.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
