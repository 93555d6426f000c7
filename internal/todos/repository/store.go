package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
)

// Store holds the ordered todo collection.
// Implementations return copies; callers never alias store-internal state.
type Store interface {
	// Add appends a new todo with a generated ID and done=false
	Add(ctx context.Context, title string) (domain.Todo, error)
	// List returns every todo in insertion order
	List(ctx context.Context) ([]domain.Todo, error)
	// Toggle flips the done flag of the todo with the given ID.
	// Returns domain.ErrTodoNotFound if no todo has that ID.
	Toggle(ctx context.Context, id string) (domain.Todo, error)
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
