package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/pkg/retry"
	"github.com/gazelia/storefront/services/distance"
	"github.com/gazelia/storefront/services/distance/gateway"
)

// DistanceUC implements the distance estimation flow: session guard, cache
// lookup, then strictly sequential routing calls with a fixed inter-request
// pause so the public routing service is never hammered.
type DistanceUC struct {
	cfg     models.DistanceConfig
	repo    distance.DistanceRepo
	gateway distance.RoutingGateway
	retrier *retry.Retrier

	// generation invalidates in-flight batches when a newer request for a
	// different key starts, so a slow batch cannot overwrite fresher results.
	generation uint64

	mu         sync.Mutex
	lastKey    string
	lastResult *models.BatchResult
}

// NewDistanceUC creates the distance estimation usecase
func NewDistanceUC(
	cfg models.DistanceConfig,
	repo distance.DistanceRepo,
	gw distance.RoutingGateway,
) *DistanceUC {
	retrier := retry.New(retry.Config{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			// No-route answers are definitive, only transport failures retry
			return !errors.Is(err, gateway.ErrNoRoute)
		},
	})

	return &DistanceUC{
		cfg:     cfg,
		repo:    repo,
		gateway: gw,
		retrier: retrier,
	}
}

// EstimateBatch resolves distances from origin to every destination. Results
// come from the session guard, then the cache, then the routing service, in
// that order. A partial batch is still returned, with the unreachable count
// surfaced on the result.
func (uc *DistanceUC) EstimateBatch(
	ctx context.Context,
	origin *models.Coordinate,
	destinations []models.Destination,
	mode models.TravelMode,
) (*models.BatchResult, error) {
	if origin == nil || len(destinations) == 0 {
		return &models.BatchResult{Results: map[string]models.DistanceResult{}}, nil
	}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		mode = models.TravelModeDriving
	}

	key := distance.CacheKey(*origin, destinations, mode, uc.cfg.CachePrecision)

	uc.mu.Lock()
	if uc.lastKey == key && uc.lastResult != nil {
		result := *uc.lastResult
		uc.mu.Unlock()
		return &result, nil
	}
	uc.mu.Unlock()

	// Starting a batch for a new key invalidates any batch still in flight
	gen := atomic.AddUint64(&uc.generation, 1)

	if entry, err := uc.repo.GetBatch(ctx, key); err != nil {
		logger.Warn("Distance cache lookup failed",
			logger.String("key", key),
			logger.Err(err))
	} else if entry != nil {
		result := &models.BatchResult{
			Results:     entry.Results,
			Unreachable: len(destinations) - len(entry.Results),
			FromCache:   true,
		}
		if result.Unreachable > 0 {
			result.Error = fmt.Sprintf("%d unreachable", result.Unreachable)
		}
		uc.remember(key, result, gen)
		return result, nil
	}

	results := make(map[string]models.DistanceResult, len(destinations))
	unreachable := 0

	for i, dest := range destinations {
		if i > 0 && uc.cfg.RequestDelayMs > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(uc.cfg.RequestDelayMs) * time.Millisecond):
			}
		}

		var routed *models.DistanceResult
		err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
			var routeErr error
			routed, routeErr = uc.gateway.Route(ctx, *origin, dest.Coordinate, mode)
			return routeErr
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("Destination unreachable",
				logger.String("destination_id", dest.ID),
				logger.String("mode", string(mode)),
				logger.Err(err))
			unreachable++
			continue
		}
		results[dest.ID] = *routed
	}

	result := &models.BatchResult{
		Results:     results,
		Unreachable: unreachable,
	}
	if unreachable > 0 {
		result.Error = fmt.Sprintf("%d unreachable", unreachable)
	}

	// A newer batch started while this one was routing; return the results
	// but do not let them displace the fresher key in cache or session.
	if atomic.LoadUint64(&uc.generation) != gen {
		return result, nil
	}

	if len(results) > 0 {
		entry := &models.DistanceCacheEntry{Key: key, Results: results}
		if err := uc.repo.StoreBatch(ctx, entry); err != nil {
			logger.Warn("Distance cache write failed",
				logger.String("key", key),
				logger.Err(err))
		}
	}

	uc.remember(key, result, gen)
	return result, nil
}

func (uc *DistanceUC) remember(key string, result *models.BatchResult, gen uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if atomic.LoadUint64(&uc.generation) != gen {
		return
	}
	uc.lastKey = key
	uc.lastResult = result
}
