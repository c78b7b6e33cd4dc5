package middleware

import (
	"sync"
	"time"

	"ecommerce-lookup/internal/config"
	"ecommerce-lookup/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter rejects requests from a client address once it exceeds the
// configured budget over the window. The limiter refills at max/window
// with a burst of max, approximating the rolling window. Rejected
// requests never reach the handlers.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex

	rps   rate.Limit
	burst int

	idleTimeout   time.Duration
	sweepInterval time.Duration
}

// NewRateLimiter creates a per-address rate limiter from the configured
// window and max-requests budget, and starts the visitor sweep.
func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		visitors:      make(map[string]*visitor),
		rps:           rate.Limit(float64(cfg.MaxRequests) / cfg.Window.Seconds()),
		burst:         cfg.MaxRequests,
		idleTimeout:   2 * cfg.Window,
		sweepInterval: cfg.Window,
	}

	go rl.cleanupVisitors()

	return rl
}

// Middleware is the echo middleware enforcing the limit.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getVisitor(getIP(c))
			if !limiter.Allow() {
				errorResponse := errors.NewErrorResponse(errors.SystemRateLimitExceeded)
				return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rps, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return xff
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(rl.sweepInterval)

		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > rl.idleTimeout {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
