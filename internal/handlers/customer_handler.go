package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "ecommerce-lookup/internal/errors"
	"ecommerce-lookup/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService services.CustomerServiceInterface, metrics services.MetricsRecorderInterface) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		metrics:         metrics,
	}
}

// ListCustomers returns a page of customers with order counts
// @Summary List customers
// @Description Paginated customer list, each row annotated with its order count
// @Tags Customers
// @Produce json
// @Param page query int false "Page number (>= 1)" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Success 200 {object} dto.ListCustomersResponse "Customer page with pagination envelope"
// @Failure 400 {object} errors.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	startTime := time.Now()

	page, limit, ok := parsePagination(c)
	if !ok {
		return SendError(c, apierrors.ValidationPagination)
	}

	customers, pagination, err := h.customerService.ListCustomers(page, limit)
	h.metrics.RecordQueryDuration("list_customers", time.Since(startTime))

	if err != nil {
		h.metrics.IncrementCounter("list_customers", map[string]string{"status": "failed"})
		return SendSystemError(c, err, "customers")
	}

	h.metrics.IncrementCounter("list_customers", map[string]string{"status": "success"})

	return c.JSON(http.StatusOK, ListResponse{
		Data:       customers,
		Pagination: pagination,
	})
}

// GetCustomer returns one customer with order statistics
// @Summary Get customer details
// @Description Single customer with per-status order counts and the five most recent orders
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID (positive integer)"
// @Success 200 {object} dto.GetCustomerResponse "Customer detail"
// @Failure 400 {object} errors.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} errors.ErrorResponse "Customer not found"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	startTime := time.Now()

	customerID, ok := parsePositiveID(c, "id")
	if !ok {
		return SendError(c, apierrors.ValidationCustomerID)
	}

	customer, err := h.customerService.GetCustomer(customerID)
	h.metrics.RecordQueryDuration("get_customer", time.Since(startTime))

	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound,
				apierrors.WithMessagef("No customer found with ID %d", customerID))
		}
		h.metrics.IncrementCounter("get_customer", map[string]string{"status": "failed"})
		return SendSystemError(c, err, "customer details")
	}

	h.metrics.IncrementCounter("get_customer", map[string]string{"status": "success"})

	return c.JSON(http.StatusOK, DataResponse{Data: customer})
}

// ListCustomerOrders returns a page of one customer's orders
// @Summary List a customer's orders
// @Description Paginated orders for a customer, newest first
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID (positive integer)"
// @Param page query int false "Page number (>= 1)" default(1)
// @Param limit query int false "Page size (1-100)" default(10)
// @Success 200 {object} dto.ListOrdersResponse "Order page with pagination envelope"
// @Failure 400 {object} errors.ErrorResponse "Invalid customer ID or pagination parameters"
// @Failure 404 {object} errors.ErrorResponse "Customer not found"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /customers/{id}/orders [get]
func (h *CustomerHandler) ListCustomerOrders(c echo.Context) error {
	startTime := time.Now()

	customerID, ok := parsePositiveID(c, "id")
	if !ok {
		return SendError(c, apierrors.ValidationCustomerID)
	}

	page, limit, ok := parsePagination(c)
	if !ok {
		return SendError(c, apierrors.ValidationPagination)
	}

	orders, pagination, err := h.customerService.ListCustomerOrders(customerID, page, limit)
	h.metrics.RecordQueryDuration("list_customer_orders", time.Since(startTime))

	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound,
				apierrors.WithMessagef("No customer found with ID %d", customerID))
		}
		h.metrics.IncrementCounter("list_customer_orders", map[string]string{"status": "failed"})
		return SendSystemError(c, err, "customer orders")
	}

	h.metrics.IncrementCounter("list_customer_orders", map[string]string{"status": "success"})

	return c.JSON(http.StatusOK, ListResponse{
		Data:       orders,
		Pagination: pagination,
	})
}
