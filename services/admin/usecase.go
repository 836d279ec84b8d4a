package admin

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// AdminUC defines the interface for back-office business logic
type AdminUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ListLeads(ctx context.Context, kind string) ([]models.Lead, error)

	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreatePromotion(ctx context.Context, promotion *models.Promotion) (*models.Promotion, error)
	UpdatePromotion(ctx context.Context, promotion *models.Promotion) error
	DeletePromotion(ctx context.Context, id string) error
}
