package services

import (
	"context"

	"todo-api/internal/domain"
)

// AuthService defines registration and login operations.
type AuthService interface {
	// Register validates and creates a new user with a hashed password.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed identity token.
	Login(ctx context.Context, email, password string) (string, error)
}

// TodoService defines todo operations, all scoped to the calling user.
type TodoService interface {
	ListTodos(ctx context.Context, userID int64) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, userID int64, task string) (*domain.Todo, error)
	GetTodo(ctx context.Context, id, userID int64) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id, userID int64, update TodoUpdate) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id, userID int64) error
}

// TodoUpdate carries the optional fields of an update request.
type TodoUpdate struct {
	Task      *string
	Completed *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u TodoUpdate) IsEmpty() bool {
	return u.Task == nil && u.Completed == nil
}
