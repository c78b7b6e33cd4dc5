package repositories

import "ecommerce-lookup/internal/dto"

// CustomerRepositoryInterface defines the read operations over the
// users table.
type CustomerRepositoryInterface interface {
	List(page, limit int) ([]dto.CustomerListItem, int64, error)
	GetDetail(id int64) (*dto.CustomerDetail, error)
	Exists(id int64) (bool, error)
}

// OrderRepositoryInterface defines the read operations over the
// orders table.
type OrderRepositoryInterface interface {
	ListByCustomer(customerID int64, page, limit int) ([]dto.OrderSummary, int64, error)
	RecentByCustomer(customerID int64, limit int) ([]dto.OrderSummary, error)
	GetDetail(orderID int64) (*dto.OrderDetail, error)
}
