package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/contact"
	"github.com/gazelia/storefront/services/contact/usecase"
)

// ContactHandler handles HTTP requests for the public contact forms
type ContactHandler struct {
	contactUC contact.ContactUC
}

// NewContactHandler creates a new contact HTTP handler
func NewContactHandler(contactUC contact.ContactUC) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
	}
}

// SubmitContact relays the general contact form
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.contactUC.SubmitContact(c.Request().Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return utils.BadRequestResponse(c, usecase.ValidationMessage(err))
		}
		logger.Error("Failed to relay contact form", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to send message")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Message sent", nil)
}

// SubmitProContact relays the professional contact form
func (h *ContactHandler) SubmitProContact(c echo.Context) error {
	var req models.ProContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.contactUC.SubmitProContact(c.Request().Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return utils.BadRequestResponse(c, usecase.ValidationMessage(err))
		}
		logger.Error("Failed to relay professional contact form", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to send message")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Message sent", nil)
}
