package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// CatalogRepo implements the catalog repository interface
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListProducts returns every product in display order
func (r *CatalogRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, slug, description, weight_kg, usage, image_url, price_hint, created_at, updated_at
		FROM products
		ORDER BY weight_kg ASC
	`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProductBySlug returns the product with the given slug, or nil when absent
func (r *CatalogRepo) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `
		SELECT id, name, slug, description, weight_kg, usage, image_url, price_hint, created_at, updated_at
		FROM products
		WHERE slug = $1
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", slug, err)
	}
	return &product, nil
}

// ListPromotions returns every promotion, newest window first
func (r *CatalogRepo) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	query := `
		SELECT id, title, body, product_id, image_url, starts_at, ends_at, created_at, updated_at
		FROM promotions
		ORDER BY starts_at DESC
	`

	promotions := []models.Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, query); err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}

// ListDeliveryPartners returns every delivery partner
func (r *CatalogRepo) ListDeliveryPartners(ctx context.Context) ([]models.DeliveryPartner, error) {
	query := `
		SELECT id, name, cities, phone, whatsapp, created_at
		FROM delivery_partners
		ORDER BY name ASC
	`

	partners := []models.DeliveryPartner{}
	if err := r.db.SelectContext(ctx, &partners, query); err != nil {
		return nil, fmt.Errorf("failed to list delivery partners: %w", err)
	}
	return partners, nil
}
