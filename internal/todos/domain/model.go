package domain

// Todo is a single item in the todo list
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// CreateTodoRequest represents data needed to create a new todo
type CreateTodoRequest struct {
	Title string
}
