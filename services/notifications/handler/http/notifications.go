package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/notifications"
)

// NotificationHandler handles HTTP requests for push subscriptions
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// Subscribe registers a browser push endpoint
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var req models.PushSubscription
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Endpoint == "" {
		return utils.BadRequestResponse(c, "endpoint is required")
	}

	sub, err := h.notificationUC.Subscribe(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to register subscription", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to register subscription")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Subscription registered", sub)
}

// Unsubscribe removes a push endpoint
func (h *NotificationHandler) Unsubscribe(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	if err := h.notificationUC.Unsubscribe(c.Request().Context(), id); err != nil {
		logger.Error("Failed to remove subscription",
			logger.String("subscription_id", id),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to remove subscription")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription removed", nil)
}

// UpdatePreferences toggles promotion notifications for a subscription
func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.notificationUC.UpdatePreferences(c.Request().Context(), id, req.Enabled); err != nil {
		logger.Error("Failed to update preferences",
			logger.String("subscription_id", id),
			logger.ErrorField(err))
		return utils.NotFoundResponse(c, "subscription not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Preferences updated", map[string]bool{"enabled": req.Enabled})
}

// SetZone attaches the subscriber's area to the subscription
func (h *NotificationHandler) SetZone(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	var req models.Coordinate
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	zone, err := h.notificationUC.SetZone(c.Request().Context(), id, req)
	if err != nil {
		logger.Error("Failed to set zone",
			logger.String("subscription_id", id),
			logger.ErrorField(err))
		return utils.NotFoundResponse(c, "subscription not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zone updated", map[string]string{"zone": zone})
}

// CheckPromotions runs a promotion sweep and publishes push events
func (h *NotificationHandler) CheckPromotions(c echo.Context) error {
	published, err := h.notificationUC.CheckPromotions(c.Request().Context())
	if err != nil {
		logger.Error("Promotion sweep failed", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "promotion sweep failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Promotion sweep completed", map[string]int{"published": published})
}
