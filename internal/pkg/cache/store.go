package cache

import (
	"context"
	"time"
)

// Store is a narrow key-value store with TTL support. Call sites never talk to
// the backing storage directly, so a different backend can be swapped in
// without touching them.
type Store interface {
	// Get returns the raw value and whether the key was present and unexpired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a value; a zero ttl means no expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
