package service

import (
	"context"
	"errors"

	"github.com/GoSim-25-26J-441/todo-backend/internal/logging"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/repository"
)

// TodoService handles business logic for todos
type TodoService struct {
	store repository.Store
}

// NewTodoService creates a new TodoService
func NewTodoService(store repository.Store) *TodoService {
	return &TodoService{
		store: store,
	}
}

// CreateTodo adds a new todo. Empty titles are accepted as-is.
func (s *TodoService) CreateTodo(ctx context.Context, req *domain.CreateTodoRequest) (domain.Todo, error) {
	logger := logging.NewLogger(ctx)

	todo, err := s.store.Add(ctx, req.Title)
	if err != nil {
		logger.LogError("create_todo", err)
		return domain.Todo{}, err
	}

	logger.LogInfof("create_todo", "id=%s", todo.ID)
	return todo, nil
}

// ListTodos returns all todos in insertion order
func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogError("list_todos", err)
		return nil, err
	}
	return todos, nil
}

// ToggleTodo flips the done flag of a todo
func (s *TodoService) ToggleTodo(ctx context.Context, id string) (domain.Todo, error) {
	logger := logging.NewLogger(ctx)

	todo, err := s.store.Toggle(ctx, id)
	if errors.Is(err, domain.ErrTodoNotFound) {
		logger.LogWarnf("toggle_todo", "id=%s not found", id)
		return domain.Todo{}, err
	}
	if err != nil {
		logger.LogError("toggle_todo", err)
		return domain.Todo{}, err
	}

	logger.LogInfof("toggle_todo", "id=%s done=%t", todo.ID, todo.Done)
	return todo, nil
}

// Ping checks the backing store
func (s *TodoService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
