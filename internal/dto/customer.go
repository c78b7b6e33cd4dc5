package dto

import (
	"time"

	"ecommerce-lookup/internal/models"
)

// ListCustomersRequest carries the pagination query parameters for the
// customer list endpoint.
type ListCustomersRequest struct {
	Page  int `query:"page" validate:"required,min=1"`
	Limit int `query:"limit" validate:"required,min=1,max=100"`
}

// CustomerListItem is one row of the paginated customer list, annotated
// with the order count computed by the list query's join.
type CustomerListItem struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	City       string `json:"city"`
	Country    string `json:"country"`
	OrderCount int64  `json:"order_count"`
}

// ListCustomersResponse is the envelope for the customer list endpoint.
type ListCustomersResponse struct {
	Data       []CustomerListItem `json:"data"`
	Pagination models.Pagination  `json:"pagination"`
}

// CustomerDetail is the single-customer view with per-status order
// aggregates. Aggregates over zero orders are reported as 0, not null.
type CustomerDetail struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender"`
	State             string    `json:"state"`
	StreetAddress     string    `json:"street_address"`
	PostalCode        string    `json:"postal_code"`
	City              string    `json:"city"`
	Country           string    `json:"country"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	TrafficSource     string    `json:"traffic_source"`
	CreatedAt         time.Time `json:"created_at"`
	TotalOrders       int64     `json:"total_orders"`
	CompletedOrders   int64     `json:"completed_orders"`
	CancelledOrders   int64     `json:"cancelled_orders"`
	ShippedOrders     int64     `json:"shipped_orders"`
	ProcessingOrders  int64     `json:"processing_orders"`
	ReturnedOrders    int64     `json:"returned_orders"`
	TotalItemsOrdered int64     `json:"total_items_ordered"`

	RecentOrders []OrderSummary `json:"recent_orders" gorm:"-"`
}

// GetCustomerResponse is the envelope for the customer detail endpoint.
type GetCustomerResponse struct {
	Data *CustomerDetail `json:"data"`
}
