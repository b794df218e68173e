package models

// Todo represents a to-do item as served by the external to-do collaborator
type Todo struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// TodoRequest represents a create/update submission for a to-do item
type TodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoStats summarizes a to-do list
type TodoStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// TodoList is a filtered, sorted view over the user's to-dos
type TodoList struct {
	Todos []Todo    `json:"todos"`
	Stats TodoStats `json:"stats"`
}
