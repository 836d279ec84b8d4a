package distance

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// DistanceRepo defines the interface for distance cache persistence
type DistanceRepo interface {
	// GetBatch returns the cached batch under the key, or nil when the key is
	// absent or the entry has outlived its TTL (expired entries are purged).
	GetBatch(ctx context.Context, key string) (*models.DistanceCacheEntry, error)
	// StoreBatch persists a completed batch under its cache key.
	StoreBatch(ctx context.Context, entry *models.DistanceCacheEntry) error
}
