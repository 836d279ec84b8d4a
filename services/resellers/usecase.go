package resellers

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// ResellerUC defines the interface for reseller directory business logic
type ResellerUC interface {
	ListResellers(ctx context.Context, query models.ResellerQuery) (*models.ResellerPage, error)
	GetReseller(ctx context.Context, id string) (*models.Reseller, error)
}
