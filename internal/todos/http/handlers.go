package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/gin-gonic/gin"
)

// ListTodos returns every todo as a JSON array
func (h *Handler) ListTodos(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo creates a todo from a {"title": "..."} body
func (h *Handler) CreateTodo(c *gin.Context) {
	var body createTodoBody
	if err := decodeJSONBody(c.Request.Body, &body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// title may be empty but must be present
	if body.Title == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required"})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), &domain.CreateTodoRequest{
		Title: *body.Title,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// ToggleTodo flips the done flag of the todo identified by the path
func (h *Handler) ToggleTodo(c *gin.Context) {
	id := c.Param("id")

	todo, err := h.todoService.ToggleTodo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// decodeJSONBody decodes exactly one JSON value; trailing non-whitespace is an error
func decodeJSONBody(r io.Reader, v interface{}) error {
	if r == nil {
		return io.EOF
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
