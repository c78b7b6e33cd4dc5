package database

import (
	"fmt"
	"testing"
	"time"

	"ecommerce-lookup/internal/config"
	"ecommerce-lookup/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, id int64, firstName, lastName, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		ID:            id,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Age:           30,
		Gender:        "F",
		City:          "Portland",
		Country:       "United States",
		State:         "Oregon",
		StreetAddress: "100 Main St",
		PostalCode:    "97201",
		TrafficSource: "Search",
		CreatedAt:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestOrder(t *testing.T, db *DB, id, userID int64, status string, createdAt time.Time, numOfItems int) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:         id,
		UserID:     userID,
		Status:     status,
		Gender:     "F",
		CreatedAt:  createdAt,
		NumOfItems: numOfItems,
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	return order
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"orders",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
