package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/catalog"
	httpHandler "github.com/gazelia/storefront/services/catalog/handler/http"
)

// HTTPHandler combines all handlers for the catalog service
type HTTPHandler struct {
	catalogHTTP *httpHandler.CatalogHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(catalogUC catalog.CatalogUC) *HTTPHandler {
	return &HTTPHandler{
		catalogHTTP: httpHandler.NewCatalogHandler(catalogUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/products", h.catalogHTTP.ListProducts)
	api.GET("/products/:slug", h.catalogHTTP.GetProduct)
	api.GET("/promotions", h.catalogHTTP.ListPromotions)
	api.GET("/delivery-partners", h.catalogHTTP.ListDeliveryPartners)
}
