package todo

import (
	"context"

	"github.com/piresc/taskgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/taskgate/services/todo TodoGW

// TodoGW adapts the external to-do collaborator, which owns the data.
// This service is a stateless pass-through for writes.
type TodoGW interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, req *models.TodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, req *models.TodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}
