package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/internal/utils"
	"github.com/gazelia/storefront/services/catalog"
)

// CatalogHandler handles HTTP requests for the storefront catalog
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog HTTP handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
	}
}

// ListProducts returns the product catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list products", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to list products")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Products retrieved", products)
}

// GetProduct returns a single product by slug
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "slug is required")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), slug)
	if err != nil {
		logger.Error("Failed to get product",
			logger.String("slug", slug),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to get product")
	}
	if product == nil {
		return utils.NotFoundResponse(c, "product not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product retrieved", product)
}

// ListPromotions returns the currently active promotions, or every promotion
// with ?all=1
func (h *CatalogHandler) ListPromotions(c echo.Context) error {
	var promotions []models.Promotion
	var err error
	if c.QueryParam("all") == "1" {
		promotions, err = h.catalogUC.AllPromotions(c.Request().Context())
	} else {
		promotions, err = h.catalogUC.ActivePromotions(c.Request().Context())
	}
	if err != nil {
		logger.Error("Failed to list promotions", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to list promotions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Promotions retrieved", promotions)
}

// ListDeliveryPartners returns the delivery partners with order links
func (h *CatalogHandler) ListDeliveryPartners(c echo.Context) error {
	partners, err := h.catalogUC.DeliveryPartners(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list delivery partners", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to list delivery partners")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery partners retrieved", partners)
}
