package services

import (
	"errors"
	"fmt"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/repositories"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService composes the order read operations.
type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repositories.OrderRepositoryInterface) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetOrder returns one order joined with its owning customer. A missing
// owning customer is reported through nil join fields, not as an error.
func (s *OrderService) GetOrder(orderID int64) (*dto.OrderDetail, error) {
	detail, err := s.orderRepo.GetDetail(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return detail, nil
}
