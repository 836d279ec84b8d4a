package models

import (
	"fmt"
	"math"
	"time"
)

// TravelMode selects the routing profile used for a distance query
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeWalking TravelMode = "walking"
)

// Valid reports whether the mode is one of the supported profiles
func (m TravelMode) Valid() bool {
	return m == TravelModeDriving || m == TravelModeWalking
}

// OSRMProfile maps the travel mode to the routing service profile segment
func (m TravelMode) OSRMProfile() string {
	if m == TravelModeWalking {
		return "foot"
	}
	return "car"
}

// Destination is a routable point with a stable identifier (a reseller outlet)
type Destination struct {
	ID         string     `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
}

// DistanceResult is the outcome of a single origin to destination routing query
type DistanceResult struct {
	Distance      string  `json:"distance"`       // human readable, e.g. "1.2 km"
	Duration      string  `json:"duration"`       // human readable, e.g. "8 min"
	DistanceValue float64 `json:"distance_value"` // meters
	DurationValue float64 `json:"duration_value"` // seconds
}

// NewDistanceResult builds a result from raw routing values, attaching the
// human-readable forms shown in the storefront.
func NewDistanceResult(meters, seconds float64) DistanceResult {
	return DistanceResult{
		Distance:      FormatDistance(meters),
		Duration:      FormatDuration(seconds),
		DistanceValue: meters,
		DurationValue: seconds,
	}
}

// FormatDistance renders meters the way the storefront displays them
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders seconds the way the storefront displays them
func FormatDuration(seconds float64) string {
	minutes := int(math.Round(seconds / 60))
	if minutes < 1 {
		minutes = 1
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

// DistanceCacheEntry is a completed batch keyed by (rounded origin, destination set, mode)
type DistanceCacheEntry struct {
	Key       string                    `json:"key"`
	Results   map[string]DistanceResult `json:"results"`
	CreatedAt time.Time                 `json:"created_at"`
}

// Expired reports whether the entry is older than the given TTL
func (e *DistanceCacheEntry) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.CreatedAt) >= ttl
}

// BatchResult is the outcome of a full distance estimation batch
type BatchResult struct {
	Results     map[string]DistanceResult `json:"results"`
	Unreachable int                       `json:"unreachable"`
	Error       string                    `json:"error,omitempty"`
	FromCache   bool                      `json:"from_cache"`
}
