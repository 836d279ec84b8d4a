package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// LeadRepo implements the lead repository interface
type LeadRepo struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sqlx.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// CreateLead persists a form submission
func (r *LeadRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO leads (id, kind, type, name, company, email, phone, city, subject, message, created_at)
		VALUES (:id, :kind, :type, :name, :company, :email, :phone, :city, :subject, :message, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, lead); err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}
