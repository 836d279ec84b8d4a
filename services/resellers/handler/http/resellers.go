package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/resellers"
)

// ResellerHandler handles HTTP requests for the reseller directory
type ResellerHandler struct {
	resellerUC resellers.ResellerUC
}

// NewResellerHandler creates a new reseller HTTP handler
func NewResellerHandler(resellerUC resellers.ResellerUC) *ResellerHandler {
	return &ResellerHandler{
		resellerUC: resellerUC,
	}
}

// ListResellers returns one page of the filtered directory. When lat and lng
// are present, distance estimates are joined onto the page.
func (h *ResellerHandler) ListResellers(c echo.Context) error {
	query := models.ResellerQuery{
		Filter: models.ResellerFilter{
			Category: c.QueryParam("category"),
			City:     c.QueryParam("city"),
			Product:  c.QueryParam("product"),
			Search:   c.QueryParam("search"),
		},
		Sort: c.QueryParam("sort"),
		Mode: models.TravelMode(c.QueryParam("mode")),
	}

	if page := c.QueryParam("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return utils.BadRequestResponse(c, "invalid page")
		}
		query.Page = n
	}
	if perPage := c.QueryParam("per_page"); perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n < 1 {
			return utils.BadRequestResponse(c, "invalid per_page")
		}
		query.PerPage = n
	}

	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr != "" || lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid latitude")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid longitude")
		}
		origin := models.Coordinate{Latitude: lat, Longitude: lng}
		if err := origin.Validate(); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
		query.Origin = &origin
	}

	if query.Mode != "" && !query.Mode.Valid() {
		return utils.BadRequestResponse(c, "mode must be driving or walking")
	}

	page, err := h.resellerUC.ListResellers(c.Request().Context(), query)
	if err != nil {
		logger.Error("Failed to list resellers", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to list resellers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Resellers retrieved", page)
}

// GetReseller returns a single outlet by id
func (h *ResellerHandler) GetReseller(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	reseller, err := h.resellerUC.GetReseller(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to get reseller",
			logger.String("reseller_id", id),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to get reseller")
	}
	if reseller == nil {
		return utils.NotFoundResponse(c, "reseller not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reseller retrieved", reseller)
}
