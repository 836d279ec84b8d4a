package catalog

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// CatalogRepo defines the interface for catalog persistence
type CatalogRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListPromotions(ctx context.Context) ([]models.Promotion, error)
	ListDeliveryPartners(ctx context.Context) ([]models.DeliveryPartner, error)
}
