package repositories

import (
	"errors"
	"fmt"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// orderListColumns is the reduced field set exposed by order lists.
const orderListColumns = "id, status, created_at, shipped_at, delivered_at, num_of_items"

// OrderRepository issues read queries against the orders table.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{
		db: db,
	}
}

// ListByCustomer returns one page of a customer's orders, newest first,
// plus that customer's total order count. Ties on created_at break by
// descending id so pagination is stable across pages.
func (r *OrderRepository) ListByCustomer(customerID int64, page, limit int) ([]dto.OrderSummary, int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Where("user_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	orders := make([]dto.OrderSummary, 0, limit)
	err := r.db.Model(&models.Order{}).
		Select(orderListColumns).
		Where("user_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(models.Offset(page, limit)).
		Scan(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

// RecentByCustomer returns the customer's most recent orders, capped at
// limit, with the same ordering as ListByCustomer.
func (r *OrderRepository) RecentByCustomer(customerID int64, limit int) ([]dto.OrderSummary, error) {
	orders := make([]dto.OrderSummary, 0, limit)
	err := r.db.Model(&models.Order{}).
		Select(orderListColumns).
		Where("user_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}

	return orders, nil
}

// GetDetail returns one order left-joined with its owning customer's
// identity fields. The customer fields stay nil when the foreign key is
// dangling; that is not an error. Returns ErrOrderNotFound when the id
// matches no order row.
func (r *OrderRepository) GetDetail(orderID int64) (*dto.OrderDetail, error) {
	var detail dto.OrderDetail

	result := r.db.Table("orders o").
		Select(`o.id, o.user_id, o.status, o.gender, o.created_at,
			o.returned_at, o.shipped_at, o.delivered_at, o.num_of_items,
			u.first_name, u.last_name, u.email, u.city, u.country`).
		Joins("LEFT JOIN users u ON o.user_id = u.id").
		Where("o.id = ?", orderID).
		Scan(&detail)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to get order detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}

	return &detail, nil
}
