package distance

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// DistanceUC defines the interface for distance estimation business logic
type DistanceUC interface {
	// EstimateBatch produces a distance/duration estimate for every
	// destination that could be routed from the origin. A nil origin
	// short-circuits to an empty result set.
	EstimateBatch(ctx context.Context, origin *models.Coordinate, destinations []models.Destination, mode models.TravelMode) (*models.BatchResult, error)
}
