package admin

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// AdminRepo defines the interface for back-office persistence
type AdminRepo interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	ListLeads(ctx context.Context, kind string) ([]models.Lead, error)

	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreatePromotion(ctx context.Context, promotion *models.Promotion) error
	UpdatePromotion(ctx context.Context, promotion *models.Promotion) error
	DeletePromotion(ctx context.Context, id string) error
}
