package distance

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// RoutingGateway defines the interface to the external routing service
type RoutingGateway interface {
	// Route computes the travel distance and duration from origin to dest for
	// the given mode. An unroutable pair returns gateway.ErrNoRoute.
	Route(ctx context.Context, origin, dest models.Coordinate, mode models.TravelMode) (*models.DistanceResult, error)
}
