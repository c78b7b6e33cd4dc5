package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB wires a gorm handle onto a sqlmock connection so driver
// failures can be injected.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCustomerRepository_List_DriverFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCustomerRepository(db)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT count").WillReturnError(driverErr)

	items, total, err := repo.List(1, 10)

	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetDetail_DriverFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCustomerRepository(db)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT u.id").WillReturnError(driverErr)

	detail, err := repo.GetDetail(1)

	// A failed query surfaces as an error, never as not-found.
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetDetail_DriverFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT o.id").WillReturnError(driverErr)

	detail, err := repo.GetDetail(1)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListByCustomer_DriverFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT count").WillReturnError(driverErr)

	orders, total, err := repo.ListByCustomer(1, 1, 10)

	assert.Nil(t, orders)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
