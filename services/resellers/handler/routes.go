package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/resellers"
	httpHandler "github.com/gazelia/storefront/services/resellers/handler/http"
)

// HTTPHandler combines all handlers for the reseller service
type HTTPHandler struct {
	resellerHTTP *httpHandler.ResellerHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(resellerUC resellers.ResellerUC) *HTTPHandler {
	return &HTTPHandler{
		resellerHTTP: httpHandler.NewResellerHandler(resellerUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/resellers", h.resellerHTTP.ListResellers)
	api.GET("/resellers/:id", h.resellerHTTP.GetReseller)
}
