package todo

import "errors"

var (
	// ErrTodoNotFound is returned when the collaborator has no item
	// with the given id
	ErrTodoNotFound = errors.New("todo not found")

	// ErrUpstreamUnavailable is returned when the to-do collaborator
	// cannot be reached or answers with an unexpected status
	ErrUpstreamUnavailable = errors.New("todo service unavailable")
)
