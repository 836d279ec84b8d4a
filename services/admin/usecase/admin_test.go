package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gazelia/storefront/internal/pkg/models"
)

type fakeAdminRepo struct {
	admin      *models.AdminUser
	promotions map[string]*models.Promotion
	products   map[string]*models.Product
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		promotions: map[string]*models.Promotion{},
		products:   map[string]*models.Product{},
	}
}

func (r *fakeAdminRepo) GetAdminByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if r.admin != nil && r.admin.Email == email {
		return r.admin, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) ListLeads(_ context.Context, _ string) ([]models.Lead, error) {
	return nil, nil
}

func (r *fakeAdminRepo) CreateProduct(_ context.Context, p *models.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *fakeAdminRepo) UpdateProduct(_ context.Context, p *models.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *fakeAdminRepo) DeleteProduct(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeAdminRepo) CreatePromotion(_ context.Context, p *models.Promotion) error {
	r.promotions[p.ID.String()] = p
	return nil
}

func (r *fakeAdminRepo) UpdatePromotion(_ context.Context, p *models.Promotion) error {
	r.promotions[p.ID.String()] = p
	return nil
}

func (r *fakeAdminRepo) DeletePromotion(_ context.Context, id string) error {
	delete(r.promotions, id)
	return nil
}

func testAdminConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "storefront-test",
		},
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeAdminRepo()
	repo.admin = &models.AdminUser{
		ID:           uuid.New(),
		Email:        "admin@gazelia.ma",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	uc := NewAdminUC(testAdminConfig(), repo)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@gazelia.ma",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeAdminRepo()
	repo.admin = &models.AdminUser{ID: uuid.New(), Email: "admin@gazelia.ma", PasswordHash: string(hash)}

	uc := NewAdminUC(testAdminConfig(), repo)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@gazelia.ma",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := NewAdminUC(testAdminConfig(), newFakeAdminRepo())

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@gazelia.ma",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreatePromotion_ValidatesWindow(t *testing.T) {
	uc := NewAdminUC(testAdminConfig(), newFakeAdminRepo())
	now := time.Now()

	_, err := uc.CreatePromotion(context.Background(), &models.Promotion{
		Title:    "Promo inversee",
		StartsAt: now,
		EndsAt:   now.Add(-time.Hour),
	})

	require.Error(t, err)
}

func TestCreatePromotion_AssignsIDAndTimestamps(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := NewAdminUC(testAdminConfig(), repo)
	now := time.Now()

	promo, err := uc.CreatePromotion(context.Background(), &models.Promotion{
		Title:    "Promo printemps",
		StartsAt: now,
		EndsAt:   now.AddDate(0, 0, 7),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, promo.ID)
	assert.False(t, promo.CreatedAt.IsZero())
	assert.Len(t, repo.promotions, 1)
}

func TestCreateProduct_RequiresNameAndSlug(t *testing.T) {
	uc := NewAdminUC(testAdminConfig(), newFakeAdminRepo())

	_, err := uc.CreateProduct(context.Background(), &models.Product{Name: "Butane 12kg"})

	require.Error(t, err)
}
