package contact

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// ContactUC defines the interface for form submission relays
type ContactUC interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
	SubmitProContact(ctx context.Context, req *models.ProContactRequest) error
}
