package services

import (
	"time"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/models"
)

// CustomerServiceInterface composes customer lookups for the handlers.
type CustomerServiceInterface interface {
	ListCustomers(page, limit int) ([]dto.CustomerListItem, models.Pagination, error)
	GetCustomer(id int64) (*dto.CustomerDetail, error)
	ListCustomerOrders(customerID int64, page, limit int) ([]dto.OrderSummary, models.Pagination, error)
}

// OrderServiceInterface composes order lookups for the handlers.
type OrderServiceInterface interface {
	GetOrder(orderID int64) (*dto.OrderDetail, error)
}

// MetricsRecorderInterface records operational metrics.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, labels map[string]string)
	RecordQueryDuration(operation string, duration time.Duration)
}
