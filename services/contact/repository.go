package contact

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// LeadRepo defines the interface for lead persistence
type LeadRepo interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
}
