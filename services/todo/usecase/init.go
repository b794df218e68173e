package usecase

import (
	"github.com/piresc/taskgate/internal/pkg/models"
	"github.com/piresc/taskgate/services/todo"
)

type TodoUC struct {
	todoGW todo.TodoGW
	cfg    *models.Config
}

// NewTodoUC creates a new to-do usecase instance
func NewTodoUC(todoGW todo.TodoGW, cfg *models.Config) *TodoUC {
	return &TodoUC{
		todoGW: todoGW,
		cfg:    cfg,
	}
}
