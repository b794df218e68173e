package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/constants"
	"github.com/piresc/taskgate/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// Requests are counted per route and client identifier (user id when
// authenticated, client IP otherwise).
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
					c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				}
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			remaining := int64(config.Limit) - count
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			return next(c)
		}
	}
}
