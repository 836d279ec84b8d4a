package resellers

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// ResellerRepo defines the interface for reseller persistence
type ResellerRepo interface {
	ListResellers(ctx context.Context, filter models.ResellerFilter) ([]models.Reseller, error)
	GetReseller(ctx context.Context, id string) (*models.Reseller, error)
}
