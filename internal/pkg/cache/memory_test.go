package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "key1", "value1", 0)
	require.NoError(t, err)

	value, found, err := store.Get(ctx, "key1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value1", value)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	current := time.Now()
	store.SetClock(func() time.Time { return current })

	err := store.Set(ctx, "key1", "value1", time.Hour)
	require.NoError(t, err)

	// Still inside the TTL window
	current = current.Add(59 * time.Minute)
	_, found, err := store.Get(ctx, "key1")
	require.NoError(t, err)
	assert.True(t, found)

	// Past the TTL window: treated as absent
	current = current.Add(2 * time.Minute)
	_, found, err = store.Get(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key1", "value1", 0))
	require.NoError(t, store.Delete(ctx, "key1"))

	_, found, err := store.Get(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}
