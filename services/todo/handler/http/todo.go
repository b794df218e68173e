package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/internal/utils"
	"github.com/piresc/taskgate/services/todo"
)

// TodoHandler handles HTTP requests for to-do operations
type TodoHandler struct {
	todoUC todo.TodoUC
}

// NewTodoHandler creates a new to-do HTTP handler
func NewTodoHandler(todoUC todo.TodoUC) *TodoHandler {
	return &TodoHandler{
		todoUC: todoUC,
	}
}

// List returns the user's to-dos with search and sort applied
func (h *TodoHandler) List(c echo.Context) error {
	search := c.QueryParam("search")
	sortBy := c.QueryParam("sort")

	list, err := h.todoUC.List(c.Request().Context(), search, sortBy)
	if err != nil {
		return h.mapError(c, err, "Failed to list todos")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Todos fetched", list)
}

// Create adds a new to-do item
func (h *TodoHandler) Create(c echo.Context) error {
	var req models.TodoRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Title == "" {
		return utils.BadRequestResponse(c, "Title is required")
	}

	created, err := h.todoUC.Create(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create todo")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Todo created", created)
}

// Update modifies an existing to-do item
func (h *TodoHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Todo ID is required")
	}

	var req models.TodoRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Title == "" {
		return utils.BadRequestResponse(c, "Title is required")
	}

	updated, err := h.todoUC.Update(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update todo")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Todo updated", updated)
}

// Delete removes a to-do item
func (h *TodoHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Todo ID is required")
	}

	if err := h.todoUC.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete todo")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Todo deleted", nil)
}

func (h *TodoHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return utils.NotFoundResponse(c, "Todo not found")
	case errors.Is(err, todo.ErrUpstreamUnavailable):
		return utils.ServiceUnavailableResponse(c, "Todo service is temporarily unavailable")
	default:
		logger.Error(fallback, logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
