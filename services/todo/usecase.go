package todo

import (
	"context"

	"github.com/piresc/taskgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/taskgate/services/todo TodoUC

// TodoUC represents the to-do usecase interface. Listing applies the
// search filter and sort order locally; writes pass through to the
// external to-do collaborator.
type TodoUC interface {
	// List fetches the user's to-dos and applies search and sort.
	// search filters by substring over title and description,
	// case-insensitive; sortBy is newest, oldest or alphabetical
	// (newest when empty).
	List(ctx context.Context, search, sortBy string) (*models.TodoList, error)

	Create(ctx context.Context, req *models.TodoRequest) (*models.Todo, error)
	Update(ctx context.Context, id string, req *models.TodoRequest) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}
