package sqlite

import (
	"context"
	"testing"

	"todo-api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func createTestUser(t *testing.T, repo *SQLiteRepository, email string) *User {
	user := &User{Email: email, PasswordHash: "$2a$10$testhashtesthashtesthash"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	require.Greater(t, user.ID, int64(0))
	return user
}

func TestCreateUser(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	retrieved, err := repo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := setupTestDB(t)

	createTestUser(t, repo, "a@x.com")

	dup := &User{Email: "a@x.com", PasswordHash: "otherhash"}
	err := repo.CreateUser(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	assert.Contains(t, err.Error(), "Email already in use")
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@x.com")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetUserByID(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	retrieved, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, retrieved.Email)

	_, err = repo.GetUserByID(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateTodo(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	todo := &Todo{Task: "buy milk", Completed: false, UserID: user.ID}
	err := repo.CreateTodo(context.Background(), todo)
	require.NoError(t, err)
	assert.Greater(t, todo.ID, int64(0))

	retrieved, err := repo.GetTodo(context.Background(), todo.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", retrieved.Task)
	assert.False(t, retrieved.Completed)
	assert.Equal(t, user.ID, retrieved.UserID)
}

func TestGetTodo_ScopedToOwner(t *testing.T) {
	repo := setupTestDB(t)

	owner := createTestUser(t, repo, "owner@x.com")
	other := createTestUser(t, repo, "other@x.com")

	todo := &Todo{Task: "private task", UserID: owner.ID}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))

	// The owner can read it
	_, err := repo.GetTodo(context.Background(), todo.ID, owner.ID)
	require.NoError(t, err)

	// Another user cannot, even with the right id
	_, err = repo.GetTodo(context.Background(), todo.ID, other.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListTodos(t *testing.T) {
	repo := setupTestDB(t)

	alice := createTestUser(t, repo, "alice@x.com")
	bob := createTestUser(t, repo, "bob@x.com")

	require.NoError(t, repo.CreateTodo(context.Background(), &Todo{Task: "alice one", UserID: alice.ID}))
	require.NoError(t, repo.CreateTodo(context.Background(), &Todo{Task: "alice two", UserID: alice.ID}))
	require.NoError(t, repo.CreateTodo(context.Background(), &Todo{Task: "bob one", UserID: bob.ID}))

	aliceTodos, err := repo.ListTodos(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceTodos, 2)

	bobTodos, err := repo.ListTodos(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobTodos, 1)
	assert.Equal(t, "bob one", bobTodos[0].Task)
}

func TestListTodos_Empty(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	todos, err := repo.ListTodos(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestUpdateTodo(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	todo := &Todo{Task: "original", UserID: user.ID}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))

	todo.Task = "updated"
	todo.Completed = true
	require.NoError(t, repo.UpdateTodo(context.Background(), todo))

	retrieved, err := repo.GetTodo(context.Background(), todo.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", retrieved.Task)
	assert.True(t, retrieved.Completed)
}

func TestUpdateTodo_NotOwned(t *testing.T) {
	repo := setupTestDB(t)

	owner := createTestUser(t, repo, "owner@x.com")
	other := createTestUser(t, repo, "other@x.com")

	todo := &Todo{Task: "original", UserID: owner.ID}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))

	hijack := &Todo{ID: todo.ID, Task: "hijacked", UserID: other.ID}
	err := repo.UpdateTodo(context.Background(), hijack)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Stored row is unchanged
	retrieved, err := repo.GetTodo(context.Background(), todo.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", retrieved.Task)
}

func TestDeleteTodo(t *testing.T) {
	repo := setupTestDB(t)

	user := createTestUser(t, repo, "a@x.com")

	todo := &Todo{Task: "to delete", UserID: user.ID}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))

	require.NoError(t, repo.DeleteTodo(context.Background(), todo.ID, user.ID))

	_, err := repo.GetTodo(context.Background(), todo.ID, user.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteTodo_NotOwned(t *testing.T) {
	repo := setupTestDB(t)

	owner := createTestUser(t, repo, "owner@x.com")
	other := createTestUser(t, repo, "other@x.com")

	todo := &Todo{Task: "protected", UserID: owner.ID}
	require.NoError(t, repo.CreateTodo(context.Background(), todo))

	err := repo.DeleteTodo(context.Background(), todo.ID, other.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Still there for the owner
	_, err = repo.GetTodo(context.Background(), todo.ID, owner.ID)
	assert.NoError(t, err)
}
