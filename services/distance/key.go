package distance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gazelia/storefront/internal/pkg/constants"
	"github.com/gazelia/storefront/internal/pkg/models"
)

// CacheKey derives the deterministic cache key for a batch from the origin
// (rounded to precision decimal places), the ordered destination identifiers,
// and the travel mode. The same triple always maps to the same key.
func CacheKey(origin models.Coordinate, destinations []models.Destination, mode models.TravelMode, precision int) string {
	ids := make([]string, len(destinations))
	for i, d := range destinations {
		ids[i] = d.ID
	}

	return fmt.Sprintf(constants.KeyDistanceCache,
		roundCoord(origin.Latitude, precision),
		roundCoord(origin.Longitude, precision),
		strings.Join(ids, "-"),
		string(mode),
	)
}

func roundCoord(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
