package gateway_http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	httpclient "github.com/piresc/taskgate/internal/pkg/http"
	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/todo"
)

// TodoClient is an HTTP client for the external to-do collaborator
type TodoClient struct {
	client *httpclient.Client
}

// NewTodoClient creates a new to-do HTTP client
func NewTodoClient(todoServiceURL string, timeout time.Duration) *TodoClient {
	return &TodoClient{
		client: httpclient.NewClient(todoServiceURL, timeout),
	}
}

type listTodosResponse struct {
	Todos []models.Todo `json:"todos"`
}

type todoResponse struct {
	Todo models.Todo `json:"todo"`
}

// ListTodos fetches all of the user's to-dos from the collaborator
func (c *TodoClient) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var result listTodosResponse
	if err := c.client.GetJSON(ctx, "/api/v1/todo", &result); err != nil {
		return nil, mapCollaboratorError(err)
	}
	return result.Todos, nil
}

// CreateTodo creates a new item through the collaborator
func (c *TodoClient) CreateTodo(ctx context.Context, req *models.TodoRequest) (*models.Todo, error) {
	var result todoResponse
	if err := c.client.PostJSON(ctx, "/api/v1/todo", req, &result); err != nil {
		return nil, mapCollaboratorError(err)
	}
	if result.Todo.ID == "" {
		return nil, fmt.Errorf("todo service response missing item")
	}
	return &result.Todo, nil
}

// UpdateTodo updates an existing item through the collaborator
func (c *TodoClient) UpdateTodo(ctx context.Context, id string, req *models.TodoRequest) (*models.Todo, error) {
	var result todoResponse
	if err := c.client.PutJSON(ctx, "/api/v1/todo/"+id, req, &result); err != nil {
		return nil, mapCollaboratorError(err)
	}
	if result.Todo.ID == "" {
		return nil, fmt.Errorf("todo service response missing item")
	}
	return &result.Todo, nil
}

// DeleteTodo removes an item through the collaborator
func (c *TodoClient) DeleteTodo(ctx context.Context, id string) error {
	if err := c.client.DeleteJSON(ctx, "/api/v1/todo/"+id); err != nil {
		return mapCollaboratorError(err)
	}
	return nil
}

// mapCollaboratorError translates client failures to domain errors. A 404
// means the item is gone; every other failure class reads as the
// collaborator being unavailable.
func mapCollaboratorError(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == nethttp.StatusNotFound {
			return todo.ErrTodoNotFound
		}
		logger.Warn("Todo service returned unexpected status",
			logger.Int("status", statusErr.StatusCode))
		return todo.ErrUpstreamUnavailable
	}

	logger.Warn("Todo service call failed", logger.Err(err))
	return todo.ErrUpstreamUnavailable
}
