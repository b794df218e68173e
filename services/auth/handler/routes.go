package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/middleware"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/auth"
	httpHandler "github.com/piresc/taskgate/services/auth/handler/http"
)

// Handler combines all handlers for the auth service
type Handler struct {
	authHTTP *httpHandler.AuthHandler
	sessions middleware.SessionVerifier
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	authUC auth.AuthUC,
	sessions middleware.SessionVerifier,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
		sessions: sessions,
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, rateLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")

	// Public endpoints, rate limited per client IP
	authGroup.POST("/login", h.authHTTP.Login, rateLimiter)
	authGroup.POST("/otp/verify", h.authHTTP.VerifyOTP, rateLimiter)

	// Endpoints behind the verified session gate
	gate := middleware.SessionGateMiddleware(h.cfg.JWT, h.sessions)
	authGroup.POST("/logout", h.authHTTP.Logout, gate)
	authGroup.GET("/events", h.authHTTP.RecentEvents, gate)
}
