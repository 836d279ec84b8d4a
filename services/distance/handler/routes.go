package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/distance"
	httpHandler "github.com/gazelia/storefront/services/distance/handler/http"
)

// HTTPHandler combines all handlers for the distance service
type HTTPHandler struct {
	distanceHTTP *httpHandler.DistanceHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(distanceUC distance.DistanceUC) *HTTPHandler {
	return &HTTPHandler{
		distanceHTTP: httpHandler.NewDistanceHandler(distanceUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/distances", h.distanceHTTP.Estimate)
}
