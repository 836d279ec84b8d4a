package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/admin"
	httpHandler "github.com/gazelia/storefront/services/admin/handler/http"
)

// HTTPHandler combines all handlers for the admin service
type HTTPHandler struct {
	adminHTTP *httpHandler.AdminHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(adminUC admin.AdminUC) *HTTPHandler {
	return &HTTPHandler{
		adminHTTP: httpHandler.NewAdminHandler(adminUC),
	}
}

// RegisterRoutes registers all HTTP routes. Everything but login sits behind
// the JWT middleware.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	e.POST("/api/admin/login", h.adminHTTP.Login)

	admin := e.Group("/api/admin", adminAuth)
	admin.GET("/leads", h.adminHTTP.ListLeads)
	admin.POST("/products", h.adminHTTP.CreateProduct)
	admin.PUT("/products/:id", h.adminHTTP.UpdateProduct)
	admin.DELETE("/products/:id", h.adminHTTP.DeleteProduct)
	admin.POST("/promotions", h.adminHTTP.CreatePromotion)
	admin.PUT("/promotions/:id", h.adminHTTP.UpdatePromotion)
	admin.DELETE("/promotions/:id", h.adminHTTP.DeletePromotion)
}
