package middleware

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/usecase"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

// RateLimit throttles an action per caller. Authenticated requests are keyed
// by uid, anonymous ones by client IP.
func RateLimit(limiter usecase.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if uid, ok := c.Get(ContextKeyUID).(string); ok && uid != "" {
				key = uid
			}

			if allowed, wait := limiter.Allow(key, action); !allowed {
				logger.Warn("Rate limit hit for %s on %s (retry in %v)", key, action, wait)
				return errors.TooManyRequests("Rate limit exceeded. Please try again later", wait)
			}
			return next(c)
		}
	}
}
