package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/distance/gateway"
)

type fakeRepo struct {
	mu      sync.Mutex
	entries map[string]*models.DistanceCacheEntry
	stores  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: map[string]*models.DistanceCacheEntry{}}
}

func (r *fakeRepo) GetBatch(_ context.Context, key string) (*models.DistanceCacheEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[key], nil
}

func (r *fakeRepo) StoreBatch(_ context.Context, entry *models.DistanceCacheEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores++
	r.entries[entry.Key] = entry
	return nil
}

type fakeGateway struct {
	mu    sync.Mutex
	calls int
	// order records destination latitudes in the sequence they were routed
	order []float64
	// fail maps destination latitude to the error returned for it
	fail map[float64]error
	// failures counts down transient errors before a call succeeds
	failures int
}

func (g *fakeGateway) Route(_ context.Context, _ models.Coordinate, dest models.Coordinate, _ models.TravelMode) (*models.DistanceResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.order = append(g.order, dest.Latitude)
	if err, ok := g.fail[dest.Latitude]; ok {
		return nil, err
	}
	if g.failures > 0 {
		g.failures--
		return nil, errors.New("connection reset")
	}
	result := models.NewDistanceResult(dest.Latitude*1000, dest.Latitude*100)
	return &result, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func testConfig() models.DistanceConfig {
	return models.DistanceConfig{
		CacheTTL:       3600,
		CachePrecision: 4,
		RequestDelayMs: 0,
		MaxRetries:     2,
	}
}

func testOrigin() *models.Coordinate {
	return &models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
}

func testDestinations() []models.Destination {
	return []models.Destination{
		{ID: "r1", Coordinate: models.Coordinate{Latitude: 1, Longitude: 1}},
		{ID: "r2", Coordinate: models.Coordinate{Latitude: 2, Longitude: 2}},
		{ID: "r3", Coordinate: models.Coordinate{Latitude: 3, Longitude: 3}},
	}
}

func TestEstimateBatch_NilOrigin(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewDistanceUC(testConfig(), newFakeRepo(), gw)

	result, err := uc.EstimateBatch(context.Background(), nil, testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Zero(t, gw.callCount())
}

func TestEstimateBatch_ComputesAndCaches(t *testing.T) {
	gw := &fakeGateway{}
	repo := newFakeRepo()
	uc := NewDistanceUC(testConfig(), repo, gw)

	result, err := uc.EstimateBatch(context.Background(), testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.Len(t, result.Results, 3)
	assert.Zero(t, result.Unreachable)
	assert.False(t, result.FromCache)
	assert.Equal(t, 3, gw.callCount())
	assert.Equal(t, 1, repo.stores)
	assert.Equal(t, "1.0 km", result.Results["r1"].Distance)
}

func TestEstimateBatch_SessionGuard(t *testing.T) {
	// The same origin, destination set and mode must not trigger a second
	// computation, not even a cache read.
	gw := &fakeGateway{}
	uc := NewDistanceUC(testConfig(), newFakeRepo(), gw)
	ctx := context.Background()

	first, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	second, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	assert.Equal(t, 3, gw.callCount())
	assert.Equal(t, first.Results, second.Results)
}

func TestEstimateBatch_CacheHit(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}
	uc := NewDistanceUC(testConfig(), repo, gw)
	ctx := context.Background()

	_, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	// A fresh usecase has no session state but shares the cache
	uc2 := NewDistanceUC(testConfig(), repo, gw)
	result, err := uc2.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Len(t, result.Results, 3)
	assert.Equal(t, 3, gw.callCount())
}

func TestEstimateBatch_CacheHitPartialKeepsError(t *testing.T) {
	// A cached partial batch reports its unreachable count the same way a
	// freshly computed one does.
	repo := newFakeRepo()
	gw := &fakeGateway{fail: map[float64]error{2: gateway.ErrNoRoute}}
	uc := NewDistanceUC(testConfig(), repo, gw)
	ctx := context.Background()

	_, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	uc2 := NewDistanceUC(testConfig(), repo, gw)
	result, err := uc2.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Equal(t, 1, result.Unreachable)
	assert.Equal(t, "1 unreachable", result.Error)
	assert.Equal(t, 3, gw.callCount())
}

func TestEstimateBatch_SequentialWithDelay(t *testing.T) {
	gw := &fakeGateway{}
	cfg := testConfig()
	cfg.RequestDelayMs = 20
	uc := NewDistanceUC(cfg, newFakeRepo(), gw)

	start := time.Now()
	result, err := uc.EstimateBatch(context.Background(), testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.Len(t, result.Results, 3)
	assert.Equal(t, []float64{1, 2, 3}, gw.order)
	// two pauses separate three one-at-a-time calls
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestEstimateBatch_ExpiredEntryRecomputes(t *testing.T) {
	// The repo reports expired entries as absent, forcing recomputation
	repo := newFakeRepo()
	gw := &fakeGateway{}
	uc := NewDistanceUC(testConfig(), repo, gw)
	ctx := context.Background()

	_, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	repo.mu.Lock()
	repo.entries = map[string]*models.DistanceCacheEntry{}
	repo.mu.Unlock()

	uc2 := NewDistanceUC(testConfig(), repo, gw)
	result, err := uc2.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, 6, gw.callCount())
	assert.Equal(t, 2, repo.stores)
}

func TestEstimateBatch_PartialFailure(t *testing.T) {
	gw := &fakeGateway{fail: map[float64]error{2: gateway.ErrNoRoute}}
	repo := newFakeRepo()
	uc := NewDistanceUC(testConfig(), repo, gw)

	result, err := uc.EstimateBatch(context.Background(), testOrigin(), testDestinations(), models.TravelModeDriving)

	require.NoError(t, err)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 1, result.Unreachable)
	assert.Equal(t, "1 unreachable", result.Error)
	assert.Contains(t, result.Results, "r1")
	assert.Contains(t, result.Results, "r3")
	assert.NotContains(t, result.Results, "r2")
	// partial batches are still cached
	assert.Equal(t, 1, repo.stores)
}

func TestEstimateBatch_NoRouteNotRetried(t *testing.T) {
	gw := &fakeGateway{fail: map[float64]error{1: gateway.ErrNoRoute}}
	uc := NewDistanceUC(testConfig(), newFakeRepo(), gw)

	dests := testDestinations()[:1]
	result, err := uc.EstimateBatch(context.Background(), testOrigin(), dests, models.TravelModeDriving)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Unreachable)
	assert.Equal(t, 1, gw.callCount())
}

func TestEstimateBatch_TransportErrorRetried(t *testing.T) {
	gw := &fakeGateway{failures: 2}
	uc := NewDistanceUC(testConfig(), newFakeRepo(), gw)

	dests := testDestinations()[:1]
	result, err := uc.EstimateBatch(context.Background(), testOrigin(), dests, models.TravelModeDriving)

	require.NoError(t, err)
	assert.Zero(t, result.Unreachable)
	assert.Len(t, result.Results, 1)
	assert.Equal(t, 3, gw.callCount())
}

func TestEstimateBatch_DifferentModeRecomputes(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewDistanceUC(testConfig(), newFakeRepo(), gw)
	ctx := context.Background()

	_, err := uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeDriving)
	require.NoError(t, err)

	_, err = uc.EstimateBatch(ctx, testOrigin(), testDestinations(), models.TravelModeWalking)
	require.NoError(t, err)

	assert.Equal(t, 6, gw.callCount())
}
