package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLock(t *testing.T) {
	ctx := context.Background()
	l := NewLocal()

	release, ok, err := l.Lock(ctx, "export:t1:children", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.Lock(ctx, "export:t1:children", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second caller must not get the lock")

	_, ok, _ = l.Lock(ctx, "export:t2:children", time.Minute)
	assert.True(t, ok, "other keys are independent")

	require.NoError(t, release(ctx))
	_, ok, _ = l.Lock(ctx, "export:t1:children", time.Minute)
	assert.True(t, ok)
}

func TestLocalLockExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2020, 7, 1, 10, 0, 0, 0, time.UTC)
	l := NewLocal()
	l.now = func() time.Time { return now }

	stale, ok, _ := l.Lock(ctx, "k", time.Second)
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = l.Lock(ctx, "k", time.Minute)
	require.True(t, ok, "expired lock can be taken over")

	// Releasing the expired lock must not free the new holder's lock.
	require.NoError(t, stale(ctx))
	_, ok, _ = l.Lock(ctx, "k", time.Minute)
	assert.False(t, ok)
}

func TestNewRedisLockUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisLock(ctx, "127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock.NewRedisLock")
}
