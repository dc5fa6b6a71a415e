package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), "")
	defer store.Close(context.Background())

	ctx := context.Background()
	fingerprint := "abc123"

	_, ok := store.Get(ctx, fingerprint)
	assert.False(t, ok)

	store.Set(ctx, fingerprint, "the answer", 24*time.Hour)

	value, ok := store.Get(ctx, fingerprint)
	require.True(t, ok)
	assert.Equal(t, "the answer", value)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), "")
	defer store.Close(context.Background())

	ctx := context.Background()
	store.Set(ctx, "key", "value", time.Minute)

	_, ok := store.Get(ctx, "key")
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok = store.Get(ctx, "key")
	assert.False(t, ok)
}

func TestRedisStoreFailOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), "")
	defer store.Close(context.Background())

	ctx := context.Background()
	mr.Close()

	// Read errors degrade to a cache miss, write errors are swallowed.
	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
	store.Set(ctx, "key", "value", time.Minute)
}
