package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanUser scans a single user from a database row
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	err := scanner.Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ScanTodo scans a single todo from a database row
func ScanTodo(scanner Scanner) (*Todo, error) {
	todo := &Todo{}
	err := scanner.Scan(&todo.ID, &todo.Task, &todo.Completed, &todo.UserID)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// ScanTodos scans multiple todos from database rows
func ScanTodos(rows Rows) ([]*Todo, error) {
	var todos []*Todo
	for rows.Next() {
		todo, err := ScanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
