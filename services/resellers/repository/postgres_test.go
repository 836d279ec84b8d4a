package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazelia/storefront/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func resellerRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "category", "city", "address", "zone", "products", "rating",
		"review_count", "delivery_time_min", "latitude", "longitude", "phone", "whatsapp", "created_at",
	})
	for i, id := range ids {
		rows.AddRow(id, "Depot", "depot", "Casablanca", "12 rue X", "ezs42", "butane-12kg",
			4.0+float64(i)/10, 10*i, 45, 33.58, -7.63, "", "", time.Now())
	}
	return rows
}

func TestListResellers_NoFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewResellerRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM resellers ORDER BY name ASC").
		WillReturnRows(resellerRows(uuid.New(), uuid.New()))

	resellers, err := repo.ListResellers(context.Background(), models.ResellerFilter{})

	require.NoError(t, err)
	assert.Len(t, resellers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResellers_AllFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewResellerRepository(db)

	mock.ExpectQuery(`WHERE category = \$1 AND city ILIKE \$2 AND products ILIKE \$3 AND \(name ILIKE \$4 OR city ILIKE \$4 OR address ILIKE \$4\)`).
		WithArgs("depot", "Casablanca", "%butane-12kg%", "%anfa%").
		WillReturnRows(resellerRows(uuid.New()))

	resellers, err := repo.ListResellers(context.Background(), models.ResellerFilter{
		Category: "depot",
		City:     "Casablanca",
		Product:  "butane-12kg",
		Search:   "anfa",
	})

	require.NoError(t, err)
	assert.Len(t, resellers, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReseller_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewResellerRepository(db)

	id := uuid.New().String()
	mock.ExpectQuery("SELECT (.+) FROM resellers WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reseller, err := repo.GetReseller(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, reseller)
	assert.NoError(t, mock.ExpectationsWereMet())
}
