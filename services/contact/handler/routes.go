package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/services/contact"
	httpHandler "github.com/gazelia/storefront/services/contact/handler/http"
)

// HTTPHandler combines all handlers for the contact service
type HTTPHandler struct {
	contactHTTP *httpHandler.ContactHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(contactUC contact.ContactUC) *HTTPHandler {
	return &HTTPHandler{
		contactHTTP: httpHandler.NewContactHandler(contactUC),
	}
}

// RegisterRoutes registers all HTTP routes. The rate limiter guards both
// public form endpoints.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, rateLimiter echo.MiddlewareFunc) {
	api := e.Group("/api")
	if rateLimiter != nil {
		api.Use(rateLimiter)
	}
	api.POST("/contact", h.contactHTTP.SubmitContact)
	api.POST("/contact-pro", h.contactHTTP.SubmitProContact)
}
