package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gazelia/storefront/internal/pkg/jwt"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/admin"
)

// Sentinel errors mapped to HTTP statuses by the handler
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// AdminUC implements the back-office business logic
type AdminUC struct {
	cfg  *models.Config
	repo admin.AdminRepo
}

// NewAdminUC creates the admin usecase
func NewAdminUC(cfg *models.Config, repo admin.AdminRepo) *AdminUC {
	return &AdminUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Login verifies the credentials and issues a token
func (uc *AdminUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	account, err := uc.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Rejected admin login",
			logger.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(account.ID, account.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// ListLeads returns the stored form submissions, optionally filtered by kind
func (uc *AdminUC) ListLeads(ctx context.Context, kind string) ([]models.Lead, error) {
	if kind != "" && kind != "contact" && kind != "contact_pro" {
		return nil, fmt.Errorf("kind must be contact or contact_pro")
	}
	return uc.repo.ListLeads(ctx, kind)
}

// CreateProduct inserts a new product
func (uc *AdminUC) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.Name == "" || product.Slug == "" {
		return nil, fmt.Errorf("name and slug are required")
	}

	product.ID = uuid.New()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := uc.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (uc *AdminUC) UpdateProduct(ctx context.Context, product *models.Product) error {
	err := uc.repo.UpdateProduct(ctx, product)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// DeleteProduct removes a product
func (uc *AdminUC) DeleteProduct(ctx context.Context, id string) error {
	err := uc.repo.DeleteProduct(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// CreatePromotion inserts a new promotion
func (uc *AdminUC) CreatePromotion(ctx context.Context, promotion *models.Promotion) (*models.Promotion, error) {
	if promotion.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !promotion.EndsAt.After(promotion.StartsAt) {
		return nil, fmt.Errorf("ends_at must be after starts_at")
	}

	promotion.ID = uuid.New()
	now := time.Now()
	promotion.CreatedAt = now
	promotion.UpdatedAt = now

	if err := uc.repo.CreatePromotion(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// UpdatePromotion updates an existing promotion
func (uc *AdminUC) UpdatePromotion(ctx context.Context, promotion *models.Promotion) error {
	if !promotion.EndsAt.After(promotion.StartsAt) {
		return fmt.Errorf("ends_at must be after starts_at")
	}

	err := uc.repo.UpdatePromotion(ctx, promotion)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// DeletePromotion removes a promotion
func (uc *AdminUC) DeletePromotion(ctx context.Context, id string) error {
	err := uc.repo.DeletePromotion(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
