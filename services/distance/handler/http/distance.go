package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/distance"
)

// DistanceHandler handles HTTP requests for distance estimation
type DistanceHandler struct {
	distanceUC distance.DistanceUC
}

// NewDistanceHandler creates a new distance HTTP handler
func NewDistanceHandler(distanceUC distance.DistanceUC) *DistanceHandler {
	return &DistanceHandler{
		distanceUC: distanceUC,
	}
}

// EstimateRequest is the body of a batch estimation call
type EstimateRequest struct {
	Origin       *models.Coordinate   `json:"origin"`
	Destinations []models.Destination `json:"destinations"`
	Mode         models.TravelMode    `json:"mode"`
}

// Estimate resolves distances from an origin to a set of destinations
func (h *DistanceHandler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	// A missing origin is a valid request that resolves to an empty batch
	if req.Origin != nil {
		if err := req.Origin.Validate(); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}
	if len(req.Destinations) == 0 {
		return utils.BadRequestResponse(c, "destinations are required")
	}
	for _, dest := range req.Destinations {
		if dest.ID == "" {
			return utils.BadRequestResponse(c, "destination id is required")
		}
		if err := dest.Coordinate.Validate(); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}
	if req.Mode != "" && !req.Mode.Valid() {
		return utils.BadRequestResponse(c, "mode must be driving or walking")
	}

	result, err := h.distanceUC.EstimateBatch(c.Request().Context(), req.Origin, req.Destinations, req.Mode)
	if err != nil {
		logger.Error("Failed to estimate distances", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to estimate distances")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Distances estimated", result)
}
