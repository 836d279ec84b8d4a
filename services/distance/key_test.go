package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gazelia/storefront/internal/pkg/models"
)

func TestCacheKey(t *testing.T) {
	origin := models.Coordinate{Latitude: 48.856614, Longitude: 2.352222}
	destinations := []models.Destination{
		{ID: "r1"}, {ID: "r2"}, {ID: "r3"},
	}

	key := CacheKey(origin, destinations, models.TravelModeDriving, 4)
	assert.Equal(t, "distances_48.8566_2.3522_r1-r2-r3_driving", key)
}

func TestCacheKey_PrecisionConfigurable(t *testing.T) {
	origin := models.Coordinate{Latitude: 48.856614, Longitude: 2.352222}
	destinations := []models.Destination{{ID: "r1"}}

	assert.Equal(t, "distances_48.86_2.35_r1_walking",
		CacheKey(origin, destinations, models.TravelModeWalking, 2))
}

func TestCacheKey_RoundingCollapsesNearbyOrigins(t *testing.T) {
	destinations := []models.Destination{{ID: "r1"}}

	// ~5m apart, identical at 4 decimal places
	a := CacheKey(models.Coordinate{Latitude: 48.85661, Longitude: 2.35222}, destinations, models.TravelModeDriving, 4)
	b := CacheKey(models.Coordinate{Latitude: 48.85663, Longitude: 2.35224}, destinations, models.TravelModeDriving, 4)
	assert.Equal(t, a, b)
}

func TestCacheKey_OrderMatters(t *testing.T) {
	origin := models.Coordinate{Latitude: 1, Longitude: 2}

	a := CacheKey(origin, []models.Destination{{ID: "r1"}, {ID: "r2"}}, models.TravelModeDriving, 4)
	b := CacheKey(origin, []models.Destination{{ID: "r2"}, {ID: "r1"}}, models.TravelModeDriving, 4)
	assert.NotEqual(t, a, b)
}

func TestCacheKey_ModeMatters(t *testing.T) {
	origin := models.Coordinate{Latitude: 1, Longitude: 2}
	destinations := []models.Destination{{ID: "r1"}}

	a := CacheKey(origin, destinations, models.TravelModeDriving, 4)
	b := CacheKey(origin, destinations, models.TravelModeWalking, 4)
	assert.NotEqual(t, a, b)
}
