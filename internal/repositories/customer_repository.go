package repositories

import (
	"errors"
	"fmt"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/models"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository issues read queries against the users table.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// List returns one page of customers ordered by ascending id, each
// annotated with its order count, plus the unfiltered customer total.
func (r *CustomerRepository) List(page, limit int) ([]dto.CustomerListItem, int64, error) {
	var total int64
	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	items := make([]dto.CustomerListItem, 0, limit)
	err := r.db.Table("users u").
		Select(`u.id, u.first_name, u.last_name, u.email, u.age, u.gender,
			u.city, u.country, COUNT(o.id) AS order_count`).
		Joins("LEFT JOIN orders o ON o.user_id = u.id").
		Group("u.id").
		Order("u.id").
		Limit(limit).
		Offset(models.Offset(page, limit)).
		Scan(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return items, total, nil
}

// GetDetail returns one customer with order statistics aggregated across
// all of their orders. Returns ErrCustomerNotFound if the id matches no
// row; a query failure is returned as-is and never masked as not-found.
func (r *CustomerRepository) GetDetail(id int64) (*dto.CustomerDetail, error) {
	var detail dto.CustomerDetail

	result := r.db.Table("users u").
		Select(`u.id, u.first_name, u.last_name, u.email, u.age, u.gender,
			u.state, u.street_address, u.postal_code, u.city, u.country,
			u.latitude, u.longitude, u.traffic_source, u.created_at,
			COUNT(o.id) AS total_orders,
			COALESCE(SUM(CASE WHEN o.status = ? THEN 1 ELSE 0 END), 0) AS completed_orders,
			COALESCE(SUM(CASE WHEN o.status = ? THEN 1 ELSE 0 END), 0) AS cancelled_orders,
			COALESCE(SUM(CASE WHEN o.status = ? THEN 1 ELSE 0 END), 0) AS shipped_orders,
			COALESCE(SUM(CASE WHEN o.status = ? THEN 1 ELSE 0 END), 0) AS processing_orders,
			COALESCE(SUM(CASE WHEN o.status = ? THEN 1 ELSE 0 END), 0) AS returned_orders,
			COALESCE(SUM(o.num_of_items), 0) AS total_items_ordered`,
			models.OrderStatusComplete,
			models.OrderStatusCancelled,
			models.OrderStatusShipped,
			models.OrderStatusProcessing,
			models.OrderStatusReturned).
		Joins("LEFT JOIN orders o ON o.user_id = u.id").
		Where("u.id = ?", id).
		Group("u.id").
		Scan(&detail)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to get customer detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCustomerNotFound
	}

	return &detail, nil
}

// Exists reports whether a customer with the given id is present.
func (r *CustomerRepository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}
