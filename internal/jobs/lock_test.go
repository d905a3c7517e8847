package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values map[string]string
	ttl    time.Duration
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) SetNX(_ context.Context, key, token string, ttl time.Duration) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = token
	m.ttl = ttl
	return true, nil
}

func (m *memoryStore) DeleteIfEqual(_ context.Context, key, token string) error {
	if m.values[key] == token {
		delete(m.values, key)
	}
	return nil
}

func TestRefreshLockExclusive(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	first := NewRefreshLock(store)
	second := NewRefreshLock(store)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, refreshLockTTL, store.ttl)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, second.Release(ctx))
	assert.Contains(t, store.values, refreshLockKey)

	require.NoError(t, first.Release(ctx))
	assert.NotContains(t, store.values, refreshLockKey)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRefreshLockKeepsKeyTakenOverAfterExpiry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	lock := NewRefreshLock(store)

	ok, err := lock.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	store.values[refreshLockKey] = "someone-else"
	require.NoError(t, lock.Release(ctx))
	assert.Equal(t, "someone-else", store.values[refreshLockKey])
}

func TestRefreshLockAcquireError(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("connection refused")

	_, err := NewRefreshLock(store).Acquire(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}
