package services

import (
	"errors"
	"fmt"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/models"
	"ecommerce-lookup/internal/repositories"
)

// RecentOrderLimit caps the recent_orders list on the customer detail view.
const RecentOrderLimit = 5

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerService composes the customer read operations out of the
// customer and order repositories.
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	orderRepo    repositories.OrderRepositoryInterface
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, orderRepo repositories.OrderRepositoryInterface) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// ListCustomers returns one page of customers with order counts and the
// pagination envelope. Parameters must already be validated.
func (s *CustomerService) ListCustomers(page, limit int) ([]dto.CustomerListItem, models.Pagination, error) {
	customers, total, err := s.customerRepo.List(page, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, models.NewPagination(page, limit, total), nil
}

// GetCustomer returns the customer detail view: the aggregate row plus
// the five most recent orders.
func (s *CustomerService) GetCustomer(id int64) (*dto.CustomerDetail, error) {
	detail, err := s.customerRepo.GetDetail(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	recent, err := s.orderRepo.RecentByCustomer(id, RecentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}

	detail.RecentOrders = recent
	return detail, nil
}

// ListCustomerOrders verifies the customer exists, then returns one page
// of their orders newest-first with the pagination envelope.
func (s *CustomerService) ListCustomerOrders(customerID int64, page, limit int) ([]dto.OrderSummary, models.Pagination, error) {
	exists, err := s.customerRepo.Exists(customerID)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, models.Pagination{}, ErrCustomerNotFound
	}

	orders, total, err := s.orderRepo.ListByCustomer(customerID, page, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list customer orders: %w", err)
	}

	return orders, models.NewPagination(page, limit, total), nil
}
