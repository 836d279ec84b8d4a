package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gazelia/storefront/internal/pkg/httpclient"
	"github.com/gazelia/storefront/internal/pkg/models"
)

// ErrNoRoute marks a pair the routing service could not connect. It is not
// retried: the road network will not change between attempts.
var ErrNoRoute = errors.New("no route between origin and destination")

// OSRMGateway talks to an OSRM-compatible routing service
type OSRMGateway struct {
	client *httpclient.Client
}

// NewOSRMGateway creates a routing gateway for the configured service
func NewOSRMGateway(cfg models.RoutingConfig) *OSRMGateway {
	return &OSRMGateway{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
	}
}

// osrmResponse mirrors the routing service envelope
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// Route queries GET /route/v1/{profile}/{olng},{olat};{dlng},{dlat}?overview=false
func (g *OSRMGateway) Route(ctx context.Context, origin, dest models.Coordinate, mode models.TravelMode) (*models.DistanceResult, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%s,%s;%s,%s?overview=false",
		g.client.BaseURL,
		mode.OSRMProfile(),
		formatCoord(origin.Longitude),
		formatCoord(origin.Latitude),
		formatCoord(dest.Longitude),
		formatCoord(dest.Latitude),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build routing request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	// A non-"Ok" code inside a 2xx envelope is still "no route"
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	result := models.NewDistanceResult(body.Routes[0].Distance, body.Routes[0].Duration)
	return &result, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
