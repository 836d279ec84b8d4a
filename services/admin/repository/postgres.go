package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// AdminRepo implements the back-office repository interface
type AdminRepo struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sqlx.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// GetAdminByEmail returns the active account with the given email, or nil
func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT id, email, full_name, password_hash, is_active, created_at
		FROM admin_users
		WHERE email = $1 AND is_active = true
	`

	var admin models.AdminUser
	err := r.db.GetContext(ctx, &admin, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return &admin, nil
}

// ListLeads returns the stored form submissions, newest first, optionally
// restricted to one kind
func (r *AdminRepo) ListLeads(ctx context.Context, kind string) ([]models.Lead, error) {
	query := `
		SELECT id, kind, type, name, company, email, phone, city, subject, message, created_at
		FROM leads
	`
	var args []interface{}
	if kind != "" {
		query += " WHERE kind = $1"
		args = append(args, kind)
	}
	query += " ORDER BY created_at DESC"

	leads := []models.Lead{}
	if err := r.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// CreateProduct inserts a new product
func (r *AdminRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, weight_kg, usage, image_url, price_hint, created_at, updated_at)
		VALUES (:id, :name, :slug, :description, :weight_kg, :usage, :image_url, :price_hint, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// UpdateProduct updates an existing product
func (r *AdminRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()

	query := `
		UPDATE products
		SET name = :name, slug = :slug, description = :description, weight_kg = :weight_kg,
			usage = :usage, image_url = :image_url, price_hint = :price_hint, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteProduct removes a product
func (r *AdminRepo) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreatePromotion inserts a new promotion
func (r *AdminRepo) CreatePromotion(ctx context.Context, promotion *models.Promotion) error {
	query := `
		INSERT INTO promotions (id, title, body, product_id, image_url, starts_at, ends_at, created_at, updated_at)
		VALUES (:id, :title, :body, :product_id, :image_url, :starts_at, :ends_at, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, promotion); err != nil {
		return fmt.Errorf("failed to insert promotion: %w", err)
	}
	return nil
}

// UpdatePromotion updates an existing promotion
func (r *AdminRepo) UpdatePromotion(ctx context.Context, promotion *models.Promotion) error {
	promotion.UpdatedAt = time.Now()

	query := `
		UPDATE promotions
		SET title = :title, body = :body, product_id = :product_id, image_url = :image_url,
			starts_at = :starts_at, ends_at = :ends_at, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, promotion)
	if err != nil {
		return fmt.Errorf("failed to update promotion: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeletePromotion removes a promotion
func (r *AdminRepo) DeletePromotion(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM promotions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
