package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/middleware"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/todo"
	httpHandler "github.com/piresc/taskgate/services/todo/handler/http"
)

// Handler combines all handlers for the todo service
type Handler struct {
	todoHTTP *httpHandler.TodoHandler
	sessions middleware.SessionVerifier
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	todoUC todo.TodoUC,
	sessions middleware.SessionVerifier,
	cfg *models.Config,
) *Handler {
	return &Handler{
		todoHTTP: httpHandler.NewTodoHandler(todoUC),
		sessions: sessions,
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Every route sits behind the
// verified session gate.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	gate := middleware.SessionGateMiddleware(h.cfg.JWT, h.sessions)
	todoGroup := e.Group("/todos", gate)

	todoGroup.GET("", h.todoHTTP.List)
	todoGroup.POST("", h.todoHTTP.Create)
	todoGroup.PUT("/:id", h.todoHTTP.Update)
	todoGroup.DELETE("/:id", h.todoHTTP.Delete)
}
