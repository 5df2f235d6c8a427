package sqlite

// User represents a row in the users table
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}

// Todo represents a row in the todos table
type Todo struct {
	ID        int64
	Task      string
	Completed bool
	UserID    int64
}
