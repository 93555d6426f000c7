package http

import (
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for todos
type Handler struct {
	todoService *service.TodoService
}

// New creates a new Handler
func New(todoService *service.TodoService) *Handler {
	return &Handler{
		todoService: todoService,
	}
}

// Register registers the todo routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/todos", h.ListTodos)
	rg.POST("/todos", h.CreateTodo)
	rg.POST("/todos/:id/toggle", h.ToggleTodo)
}

type createTodoBody struct {
	Title *string `json:"title"`
}
