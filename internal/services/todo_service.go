package services

import (
	"context"

	"todo-api/internal/domain"
	"todo-api/internal/errors"
	"todo-api/internal/repository/sqlite"
	"todo-api/internal/validation"
)

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TodoValidator
}

// NewTodoService creates a new TodoService instance
func NewTodoService(repo sqlite.Repository) TodoService {
	return &todoServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTodoValidator(),
	}
}

// ListTodos returns all todos owned by the given user.
func (s *todoServiceImpl) ListTodos(ctx context.Context, userID int64) ([]domain.Todo, error) {
	dbTodos, err := s.repo.ListTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	todos := s.mapper.Todo.FromDatabaseSlice(dbTodos)
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// CreateTodo validates and creates a todo owned by the given user.
// New todos are always stored incomplete, whatever the request said.
func (s *todoServiceImpl) CreateTodo(ctx context.Context, userID int64, task string) (*domain.Todo, error) {
	if err := s.validator.ValidateTodoForCreation(task); err != nil {
		return nil, wrapValidation(err)
	}

	dbTodo := &sqlite.Todo{
		Task:      task,
		Completed: false,
		UserID:    userID,
	}
	if err := s.repo.CreateTodo(ctx, dbTodo); err != nil {
		return nil, err
	}

	domainTodo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &domainTodo, nil
}

// GetTodo retrieves a single todo owned by the given user.
func (s *todoServiceImpl) GetTodo(ctx context.Context, id, userID int64) (*domain.Todo, error) {
	dbTodo, err := s.repo.GetTodo(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	domainTodo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &domainTodo, nil
}

// UpdateTodo applies the provided fields to a todo owned by the given user.
// An update carrying no fields at all is rejected before any store access.
func (s *todoServiceImpl) UpdateTodo(ctx context.Context, id, userID int64, update TodoUpdate) (*domain.Todo, error) {
	if update.IsEmpty() {
		return nil, errors.NewValidationError("No update data provided", nil)
	}

	if err := s.validator.ValidateTodoForUpdate(update.Task, update.Completed); err != nil {
		return nil, wrapValidation(err)
	}

	dbTodo, err := s.repo.GetTodo(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if update.Task != nil {
		dbTodo.Task = *update.Task
	}
	if update.Completed != nil {
		dbTodo.Completed = *update.Completed
	}

	if err := s.repo.UpdateTodo(ctx, dbTodo); err != nil {
		return nil, err
	}

	domainTodo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &domainTodo, nil
}

// DeleteTodo removes a todo owned by the given user.
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id, userID int64) error {
	return s.repo.DeleteTodo(ctx, id, userID)
}
