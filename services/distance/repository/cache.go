package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gazelia/storefront/internal/pkg/cache"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/distance"
)

type distanceRepo struct {
	store cache.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewDistanceRepository creates a cache-backed distance repository. The TTL is
// enforced twice: the store expires the key, and the entry timestamp is checked
// on read in case the backing store does not honor expirations.
func NewDistanceRepository(store cache.Store, ttl time.Duration) distance.DistanceRepo {
	return &distanceRepo{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// GetBatch returns the cached batch for the key, treating expired entries as absent
func (r *distanceRepo) GetBatch(ctx context.Context, key string) (*models.DistanceCacheEntry, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read distance cache: %w", err)
	}
	if !found {
		return nil, nil
	}

	var entry models.DistanceCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// A corrupt entry is as good as a miss; drop it
		logger.Warn("Dropping unreadable distance cache entry", logger.String("key", key), logger.Err(err))
		_ = r.store.Delete(ctx, key)
		return nil, nil
	}

	if entry.Expired(r.ttl, r.now()) {
		if err := r.store.Delete(ctx, key); err != nil {
			logger.Warn("Failed to purge expired distance cache entry", logger.String("key", key), logger.Err(err))
		}
		return nil, nil
	}

	return &entry, nil
}

// StoreBatch persists a completed batch under its cache key
func (r *distanceRepo) StoreBatch(ctx context.Context, entry *models.DistanceCacheEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal distance cache entry: %w", err)
	}

	if err := r.store.Set(ctx, entry.Key, string(raw), r.ttl); err != nil {
		return fmt.Errorf("failed to write distance cache: %w", err)
	}

	return nil
}
