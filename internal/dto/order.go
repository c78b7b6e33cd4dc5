package dto

import (
	"time"

	"ecommerce-lookup/internal/models"
)

// OrderSummary is the reduced order shape used in order lists and the
// customer detail's recent_orders.
type OrderSummary struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	NumOfItems  int        `json:"num_of_items"`
}

// ListOrdersResponse is the envelope for a customer's paginated orders.
type ListOrdersResponse struct {
	Data       []OrderSummary    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// OrderDetail is a full order row joined with its owning customer's
// identity fields. The customer fields are omitted when the join misses.
type OrderDetail struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Status      string     `json:"status"`
	Gender      string     `json:"gender"`
	CreatedAt   time.Time  `json:"created_at"`
	ReturnedAt  *time.Time `json:"returned_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	NumOfItems  int        `json:"num_of_items"`

	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// GetOrderResponse is the envelope for the order detail endpoint.
type GetOrderResponse struct {
	Data *OrderDetail `json:"data"`
}
