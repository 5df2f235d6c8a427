package domain

// Todo represents a single to-do item owned by a user.
// Field names follow the wire contract: {id, task, completed, userId}.
type Todo struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"userId"`
}

// NewTodo creates a new Todo owned by the given user.
// New todos always start incomplete.
func NewTodo(task string, userID int64) Todo {
	return Todo{
		Task:      task,
		Completed: false,
		UserID:    userID,
	}
}

// IsValid checks if the todo has valid data.
func (t Todo) IsValid() bool {
	return t.Task != "" && t.UserID > 0
}

// String returns the task text for display purposes.
func (t Todo) String() string {
	return t.Task
}
