package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/taskgate/internal/pkg/jwt"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/internal/utils"
)

// SessionVerifier checks that a token id is still the active session for a
// user. Logout revokes the server-side entry, so the gate re-evaluates on
// every request instead of trusting the token alone.
type SessionVerifier interface {
	SessionMatches(ctx context.Context, userID, tokenID string) (bool, error)
}

// SessionGateMiddleware creates the route guard in front of protected views.
// A request passes only with a valid bearer token that carries the OTP
// verification marker (amr claim) and still matches the active session.
func SessionGateMiddleware(config models.JWTConfig, sessions SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			// Only fully verified sessions (credentials + OTP) pass the gate
			if amr, _ := (*claims)["amr"].(string); amr != "otp" {
				return utils.UnauthorizedResponse(c, "Invalid token: session not verified")
			}

			tokenID, _ := (*claims)["jti"].(string)
			if tokenID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing jti claim")
			}

			userIDStr := fmt.Sprintf("%v", userID)

			if sessions != nil {
				active, err := sessions.SessionMatches(c.Request().Context(), userIDStr, tokenID)
				if err != nil {
					return utils.InternalServerErrorResponse(c, "Session check failed")
				}
				if !active {
					return utils.UnauthorizedResponse(c, "Session expired")
				}
			}

			c.Set("user_id", userIDStr)
			if email, ok := (*claims)["email"].(string); ok {
				c.Set("email", email)
			}

			return next(c)
		}
	}
}
