package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/catalog"
)

// orderMessage prefills the WhatsApp conversation opened from a partner card
const orderMessage = "Bonjour, je souhaite commander une bouteille de gaz."

// CatalogUC implements the storefront catalog business logic
type CatalogUC struct {
	repo catalog.CatalogRepo
	now  func() time.Time
}

// NewCatalogUC creates the catalog usecase
func NewCatalogUC(repo catalog.CatalogRepo) *CatalogUC {
	return &CatalogUC{
		repo: repo,
		now:  time.Now,
	}
}

// ListProducts returns every product in display order
func (uc *CatalogUC) ListProducts(ctx context.Context) ([]models.Product, error) {
	return uc.repo.ListProducts(ctx)
}

// GetProduct returns the product with the given slug, or nil when absent
func (uc *CatalogUC) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	return uc.repo.GetProductBySlug(ctx, slug)
}

// ActivePromotions returns the promotions whose window covers now
func (uc *CatalogUC) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	promotions, err := uc.repo.ListPromotions(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	active := make([]models.Promotion, 0, len(promotions))
	for _, promo := range promotions {
		if promo.ActiveAt(now) {
			active = append(active, promo)
		}
	}
	return active, nil
}

// AllPromotions returns every promotion regardless of window, newest first
func (uc *CatalogUC) AllPromotions(ctx context.Context) ([]models.Promotion, error) {
	return uc.repo.ListPromotions(ctx)
}

// DeliveryPartners returns the delivery partners with their WhatsApp order links
func (uc *CatalogUC) DeliveryPartners(ctx context.Context) ([]models.DeliveryPartner, error) {
	partners, err := uc.repo.ListDeliveryPartners(ctx)
	if err != nil {
		return nil, err
	}

	for i := range partners {
		partners[i].WhatsAppLink = whatsAppLink(partners[i].WhatsApp)
	}
	return partners, nil
}

// whatsAppLink builds a wa.me deep link with the order message prefilled
func whatsAppLink(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(orderMessage))
}
