package handlers

import (
	"strconv"
	"strings"

	"ecommerce-lookup/internal/dto"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// parsePagination binds and validates page/limit query parameters.
// Missing parameters take their defaults; out-of-range or non-numeric
// values report invalid. No store access happens before this returns.
func parsePagination(c echo.Context) (page, limit int, ok bool) {
	var req dto.ListCustomersRequest
	if err := c.Bind(&req); err != nil {
		return 0, 0, false
	}

	// Defaults apply only when the parameter is absent; an explicit
	// page=0 or limit=0 must fail validation, not be clamped.
	if c.QueryParam("page") == "" {
		req.Page = DefaultPage
	}
	if c.QueryParam("limit") == "" {
		req.Limit = DefaultLimit
	}

	if err := c.Validate(req); err != nil {
		return 0, 0, false
	}

	return req.Page, req.Limit, true
}

// parsePositiveID parses a path parameter as a positive integer identity.
func parsePositiveID(c echo.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
