package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/piresc/taskgate/internal/pkg/logger"
	"github.com/piresc/taskgate/internal/pkg/models"
)

// Sort orders accepted by List
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortAlphabetical = "alphabetical"
)

// List fetches the full list from the collaborator and applies the search
// filter and sort order locally. The collaborator API has no query
// parameters, so filtering here keeps it untouched.
func (u *TodoUC) List(ctx context.Context, search, sortBy string) (*models.TodoList, error) {
	todos, err := u.todoGW.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	filtered := filterTodos(todos, search)
	sortTodos(filtered, sortBy)

	stats := models.TodoStats{Total: len(filtered)}
	for _, item := range filtered {
		if item.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}

	return &models.TodoList{
		Todos: filtered,
		Stats: stats,
	}, nil
}

// Create forwards a new item to the collaborator
func (u *TodoUC) Create(ctx context.Context, req *models.TodoRequest) (*models.Todo, error) {
	created, err := u.todoGW.CreateTodo(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	logger.Info("Created todo", logger.String("todo_id", created.ID))
	return created, nil
}

// Update forwards changes for an existing item to the collaborator
func (u *TodoUC) Update(ctx context.Context, id string, req *models.TodoRequest) (*models.Todo, error) {
	updated, err := u.todoGW.UpdateTodo(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	logger.Info("Updated todo", logger.String("todo_id", id))
	return updated, nil
}

// Delete removes an item through the collaborator
func (u *TodoUC) Delete(ctx context.Context, id string) error {
	if err := u.todoGW.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	logger.Info("Deleted todo", logger.String("todo_id", id))
	return nil
}

// filterTodos keeps items whose title or description contains the search
// term, case-insensitive. An empty term keeps everything.
func filterTodos(todos []models.Todo, search string) []models.Todo {
	if search == "" {
		return append([]models.Todo{}, todos...)
	}

	term := strings.ToLower(search)
	filtered := make([]models.Todo, 0, len(todos))
	for _, item := range todos {
		if strings.Contains(strings.ToLower(item.Title), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// sortTodos orders the slice in place. Unknown or empty sortBy falls back
// to newest first. CreatedAt timestamps are RFC 3339 strings from the
// collaborator, so lexicographic comparison orders them chronologically.
func sortTodos(todos []models.Todo, sortBy string) {
	switch sortBy {
	case SortOldest:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].CreatedAt < todos[j].CreatedAt
		})
	case SortAlphabetical:
		sort.SliceStable(todos, func(i, j int) bool {
			return strings.ToLower(todos[i].Title) < strings.ToLower(todos[j].Title)
		})
	default:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].CreatedAt > todos[j].CreatedAt
		})
	}
}
