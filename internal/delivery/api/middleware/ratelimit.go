package middleware

import (
	"log/slog"
	"math"
	"strconv"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	"academy/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per caller, or per client IP for
// anonymous requests.
type RateLimitMiddleware struct {
	limiter    service.RateLimiter
	retryAfter string
	logger     *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:    limiter,
		retryAfter: strconv.Itoa(retryAfterSeconds(cfg)),
		logger:     logger,
	}
}

// Handle rejects a request with 429 once its key exhausts the budget. Limiter
// failures let the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		allowed, err := m.limiter.Allow(c.Request().Context(), clientKey(c))
		if err != nil {
			deliverycontext.LoggerFrom(c.Request().Context(), m.logger).
				Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		if !allowed {
			c.Response().Header().Set(echo.HeaderRetryAfter, m.retryAfter)

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

// clientKey must run after the optional auth middleware to see the caller.
func clientKey(c echo.Context) string {
	if userID, ok := deliverycontext.Caller(c); ok {
		return "user:" + strconv.FormatUint(uint64(userID), 10)
	}

	return "ip:" + c.RealIP()
}

func retryAfterSeconds(cfg *config.Config) int {
	var rl *config.RateLimitConfig
	if cfg != nil {
		rl = cfg.RateLimit
	}

	return int(math.Ceil(ratelimit.RetryAfter(rl).Seconds()))
}
