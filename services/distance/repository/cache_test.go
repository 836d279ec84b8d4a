package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazelia/storefront/internal/pkg/cache"
	"github.com/gazelia/storefront/internal/pkg/database"
	"github.com/gazelia/storefront/internal/pkg/models"
)

func setupRepo(t *testing.T) (*miniredis.Miniredis, *distanceRepo) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedisStore(&database.RedisClient{Client: client})

	return mr, &distanceRepo{store: store, ttl: time.Hour, now: time.Now}
}

func sampleEntry(key string) *models.DistanceCacheEntry {
	return &models.DistanceCacheEntry{
		Key: key,
		Results: map[string]models.DistanceResult{
			"r1": models.NewDistanceResult(1200, 300),
			"r2": models.NewDistanceResult(4500, 720),
		},
	}
}

func TestStoreAndGetBatch(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	key := "distances_48.8566_2.3522_r1-r2_driving"
	require.NoError(t, repo.StoreBatch(ctx, sampleEntry(key)))

	entry, err := repo.GetBatch(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, key, entry.Key)
	assert.Len(t, entry.Results, 2)
	assert.Equal(t, 1200.0, entry.Results["r1"].DistanceValue)
	assert.Equal(t, "1.2 km", entry.Results["r1"].Distance)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestGetBatch_Missing(t *testing.T) {
	_, repo := setupRepo(t)

	entry, err := repo.GetBatch(context.Background(), "distances_0_0_x_driving")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetBatch_StoreExpiry(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()

	key := "distances_1_2_r1_driving"
	require.NoError(t, repo.StoreBatch(ctx, sampleEntry(key)))

	mr.FastForward(2 * time.Hour)

	entry, err := repo.GetBatch(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetBatch_TimestampExpiry(t *testing.T) {
	// Even when the backing store still holds the key, an entry older than
	// the TTL is treated as absent and purged.
	mr, repo := setupRepo(t)
	ctx := context.Background()

	key := "distances_1_2_r1_driving"
	entry := sampleEntry(key)
	entry.CreatedAt = time.Now().Add(-90 * time.Minute)
	require.NoError(t, repo.StoreBatch(ctx, entry))

	got, err := repo.GetBatch(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(key))
}

func TestGetBatch_CorruptEntry(t *testing.T) {
	mr, repo := setupRepo(t)
	ctx := context.Background()

	key := "distances_1_2_r1_driving"
	mr.Set(key, "{not json")

	entry, err := repo.GetBatch(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.False(t, mr.Exists(key))
}
