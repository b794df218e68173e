package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo using the Zap logger
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			logger.LogHTTPRequest(method, path, clientIP, userIDStr, requestID, statusCode, latency, err)

			return err
		}
	}
}
