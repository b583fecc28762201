package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"portfolia/internal/infrastructure/ratelimit"
	"portfolia/pkg/errors"
	"portfolia/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

// NewRateLimitMiddleware builds a per-IP limiter: burst of 3, one token
// back per minute. Tuned for the public contact form.
func NewRateLimitMiddleware() *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: ratelimit.NewRateLimiter(3, 1, time.Minute),
	}
}

func (m *RateLimitMiddleware) LimitByIP(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow(c.RealIP()) {
			return response.Error(c, errors.TooManyRequests("Too many submissions, please try again later"))
		}

		return next(c)
	}
}

// StartCleanup prunes idle buckets until ctx is cancelled.
func (m *RateLimitMiddleware) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.limiter.Cleanup(30 * time.Minute)
			case <-ctx.Done():
				return
			}
		}
	}()
}
