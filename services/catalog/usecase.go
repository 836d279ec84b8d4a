package catalog

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// CatalogUC defines the interface for storefront catalog business logic
type CatalogUC interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	ActivePromotions(ctx context.Context) ([]models.Promotion, error)
	AllPromotions(ctx context.Context) ([]models.Promotion, error)
	DeliveryPartners(ctx context.Context) ([]models.DeliveryPartner, error)
}
