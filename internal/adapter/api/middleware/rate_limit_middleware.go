package middleware

import (
	"tradeport/internal/infrastructure/ratelimit"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// LimitGuests throttles anonymous requests per client IP. Authenticated
// callers are not limited here; their identity already scopes what they can
// touch.
func (m *RateLimitMiddleware) LimitGuests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Get("uid").(string); ok {
			return next(c)
		}

		allowed, _ := m.limiter.Allow(c.RealIP())
		if !allowed {
			return response.Error(c, errors.TooManyRequests("Too many quotation requests, please try again later"))
		}

		return next(c)
	}
}
