package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo-api/internal/errors"
	"todo-api/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations.
// Every todo operation is scoped by the owning user's id; a todo is never
// addressed by its id alone.
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)

	// Todo operations
	CreateTodo(ctx context.Context, todo *Todo) error
	GetTodo(ctx context.Context, id, userID int64) (*Todo, error)
	ListTodos(ctx context.Context, userID int64) ([]*Todo, error)
	UpdateTodo(ctx context.Context, todo *Todo) error
	DeleteTodo(ctx context.Context, id, userID int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateUser inserts a new user. A duplicate email surfaces as a conflict
// error via the UNIQUE constraint on the email column.
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (email, password_hash) VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, user.Email, user.PasswordHash)
	if err != nil {
		if IsUniqueViolation(err) {
			return errors.NewConflictError("Email already in use", "user")
		}
		return err
	}

	user.ID = id
	return nil
}

// GetUserByEmail retrieves a user by email address
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, password_hash FROM users WHERE email = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", email, email)
}

// GetUserByID retrieves a user by ID
func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, email, password_hash FROM users WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", fmt.Sprintf("%d", id), id)
}

// CreateTodo inserts a new todo
func (r *SQLiteRepository) CreateTodo(ctx context.Context, todo *Todo) error {
	query := `INSERT INTO todos (task, completed, user_id) VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, todo.Task, todo.Completed, todo.UserID)
	if err != nil {
		return err
	}

	todo.ID = id
	return nil
}

// GetTodo retrieves a todo by (id, owner)
func (r *SQLiteRepository) GetTodo(ctx context.Context, id, userID int64) (*Todo, error) {
	query := `
	SELECT id, task, completed, user_id
	FROM todos
	WHERE id = ? AND user_id = ?`

	return QuerySingle(ctx, r.db, query, ScanTodo, "todo", fmt.Sprintf("%d", id), id, userID)
}

// ListTodos retrieves all todos owned by the given user
func (r *SQLiteRepository) ListTodos(ctx context.Context, userID int64) ([]*Todo, error) {
	query := `
	SELECT id, task, completed, user_id
	FROM todos
	WHERE user_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos", userID)
}

// UpdateTodo updates an existing todo matching (id, owner)
func (r *SQLiteRepository) UpdateTodo(ctx context.Context, todo *Todo) error {
	query := `
	UPDATE todos
	SET task = ?, completed = ?
	WHERE id = ? AND user_id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "todo", fmt.Sprintf("%d", todo.ID), todo.Task, todo.Completed, todo.ID, todo.UserID)
}

// DeleteTodo deletes a todo matching (id, owner)
func (r *SQLiteRepository) DeleteTodo(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM todos WHERE id = ? AND user_id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "todo", fmt.Sprintf("%d", id), id, userID)
}
