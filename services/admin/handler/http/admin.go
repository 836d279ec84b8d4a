package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/admin"
	"github.com/gazelia/storefront/services/admin/usecase"
)

// AdminHandler handles HTTP requests for the back office
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin HTTP handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

// Login verifies credentials and issues a token
func (h *AdminHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	resp, err := h.adminUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "invalid credentials")
		}
		logger.Error("Login failed", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ListLeads returns the stored form submissions
func (h *AdminHandler) ListLeads(c echo.Context) error {
	leads, err := h.adminUC.ListLeads(c.Request().Context(), c.QueryParam("kind"))
	if err != nil {
		logger.Error("Failed to list leads", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Leads retrieved", leads)
}

// CreateProduct inserts a new product
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.adminUC.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		logger.Error("Failed to create product", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Product created", created)
}

// UpdateProduct updates an existing product
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.adminUC.UpdateProduct(c.Request().Context(), &product); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return utils.NotFoundResponse(c, "product not found")
		}
		logger.Error("Failed to update product", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to update product")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct removes a product
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	if err := h.adminUC.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return utils.NotFoundResponse(c, "product not found")
		}
		logger.Error("Failed to delete product", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to delete product")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product deleted", nil)
}

// CreatePromotion inserts a new promotion
func (h *AdminHandler) CreatePromotion(c echo.Context) error {
	var promotion models.Promotion
	if err := c.Bind(&promotion); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.adminUC.CreatePromotion(c.Request().Context(), &promotion)
	if err != nil {
		logger.Error("Failed to create promotion", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Promotion created", created)
}

// UpdatePromotion updates an existing promotion
func (h *AdminHandler) UpdatePromotion(c echo.Context) error {
	var promotion models.Promotion
	if err := c.Bind(&promotion); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.adminUC.UpdatePromotion(c.Request().Context(), &promotion); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return utils.NotFoundResponse(c, "promotion not found")
		}
		logger.Error("Failed to update promotion", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to update promotion")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Promotion updated", promotion)
}

// DeletePromotion removes a promotion
func (h *AdminHandler) DeletePromotion(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	if err := h.adminUC.DeletePromotion(c.Request().Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return utils.NotFoundResponse(c, "promotion not found")
		}
		logger.Error("Failed to delete promotion", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to delete promotion")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Promotion deleted", nil)
}
