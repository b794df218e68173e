package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/requestcontext"
)

// RequestIDMiddleware attaches a request id to every request, reusing the
// caller's X-Request-ID when present. The id goes into both the echo
// context and the request's context.Context; the latter is what the HTTP
// client reads when forwarding the id to collaborators.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := requestcontext.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			return next(c)
		}
	}
}
