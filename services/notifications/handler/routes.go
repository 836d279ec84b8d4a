package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/notifications"
	httpHandler "github.com/gazelia/storefront/services/notifications/handler/http"
)

// HTTPHandler combines all handlers for the notification service
type HTTPHandler struct {
	notificationHTTP *httpHandler.NotificationHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(notificationUC notifications.NotificationUC) *HTTPHandler {
	return &HTTPHandler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC),
	}
}

// RegisterRoutes registers all HTTP routes. The promotion sweep is only
// reachable through the authenticated admin group.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	api := e.Group("/api/notifications")
	api.POST("/subscribe", h.notificationHTTP.Subscribe)
	api.DELETE("/subscriptions/:id", h.notificationHTTP.Unsubscribe)
	api.PUT("/subscriptions/:id/preferences", h.notificationHTTP.UpdatePreferences)
	api.PUT("/subscriptions/:id/zone", h.notificationHTTP.SetZone)

	admin := e.Group("/api/admin/notifications", adminAuth)
	admin.POST("/check", h.notificationHTTP.CheckPromotions)
}
