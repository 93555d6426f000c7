package repository

import (
	"context"
	"sync"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
)

// MemoryStore keeps todos in process memory. All operations serialize on one mutex.
type MemoryStore struct {
	mu    sync.Mutex
	todos []domain.Todo
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: []domain.Todo{},
	}
}

// Add creates a todo and appends it to the end of the list
func (s *MemoryStore) Add(_ context.Context, title string) (domain.Todo, error) {
	todo := domain.Todo{
		ID:    uuid.New().String(),
		Title: title,
		Done:  false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = append(s.todos, todo)
	return todo, nil
}

// List returns a snapshot of all todos
func (s *MemoryStore) List(_ context.Context) ([]domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]domain.Todo, len(s.todos))
	copy(todos, s.todos)
	return todos, nil
}

// Toggle flips the done flag of the first todo matching id
func (s *MemoryStore) Toggle(_ context.Context, id string) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Done = !s.todos[i].Done
			return s.todos[i], nil
		}
	}
	return domain.Todo{}, domain.ErrTodoNotFound
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
