package domain

import (
	"todo-api/internal/repository/sqlite"
)

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(domainUser User) sqlite.User {
	return sqlite.User{
		ID:           domainUser.ID,
		Email:        domainUser.Email,
		PasswordHash: domainUser.PasswordHash,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
	}
}

// TodoMapper handles conversion between domain and database Todo models.
type TodoMapper struct{}

// NewTodoMapper creates a new TodoMapper instance.
func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

// ToDatabase converts a domain Todo to a database Todo.
func (m *TodoMapper) ToDatabase(domainTodo Todo) sqlite.Todo {
	return sqlite.Todo{
		ID:        domainTodo.ID,
		Task:      domainTodo.Task,
		Completed: domainTodo.Completed,
		UserID:    domainTodo.UserID,
	}
}

// FromDatabase converts a database Todo to a domain Todo.
func (m *TodoMapper) FromDatabase(dbTodo sqlite.Todo) Todo {
	return Todo{
		ID:        dbTodo.ID,
		Task:      dbTodo.Task,
		Completed: dbTodo.Completed,
		UserID:    dbTodo.UserID,
	}
}

// FromDatabaseSlice converts a slice of database Todos to domain Todos.
func (m *TodoMapper) FromDatabaseSlice(dbTodos []*sqlite.Todo) []Todo {
	domainTodos := make([]Todo, len(dbTodos))
	for i, todo := range dbTodos {
		domainTodos[i] = m.FromDatabase(*todo)
	}
	return domainTodos
}

// Mapper aggregates all model mappers.
type Mapper struct {
	User *UserMapper
	Todo *TodoMapper
}

// NewMapper creates a new aggregate Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{
		User: NewUserMapper(),
		Todo: NewTodoMapper(),
	}
}
