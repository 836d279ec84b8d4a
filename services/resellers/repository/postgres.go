package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// ResellerRepo implements the reseller repository interface
type ResellerRepo struct {
	db *sqlx.DB
}

// NewResellerRepository creates a new reseller repository
func NewResellerRepository(db *sqlx.DB) *ResellerRepo {
	return &ResellerRepo{db: db}
}

const resellerColumns = `id, name, category, city, address, zone, products, rating,
		review_count, delivery_time_min, latitude, longitude, phone, whatsapp, created_at`

// ListResellers returns the outlets matching every non-empty filter field
func (r *ResellerRepo) ListResellers(ctx context.Context, filter models.ResellerFilter) ([]models.Reseller, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != "" {
		addCondition("category = $%d", filter.Category)
	}
	if filter.City != "" {
		addCondition("city ILIKE $%d", filter.City)
	}
	if filter.Product != "" {
		addCondition("products ILIKE $%d", "%"+filter.Product+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR city ILIKE $%d OR address ILIKE $%d)", len(args), len(args), len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM resellers", resellerColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	resellers := []models.Reseller{}
	if err := r.db.SelectContext(ctx, &resellers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list resellers: %w", err)
	}
	return resellers, nil
}

// GetReseller returns the outlet with the given id, or nil when absent
func (r *ResellerRepo) GetReseller(ctx context.Context, id string) (*models.Reseller, error) {
	query := fmt.Sprintf("SELECT %s FROM resellers WHERE id = $1", resellerColumns)

	var reseller models.Reseller
	err := r.db.GetContext(ctx, &reseller, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reseller %s: %w", id, err)
	}
	return &reseller, nil
}
