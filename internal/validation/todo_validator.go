package validation

// TaskMinLength is the shortest acceptable task description
const TaskMinLength = 3

// TodoValidator validates todo creation and update payloads.
// Checks run in declaration order and stop at the first failing field.
type TodoValidator struct {
	validator *Validator
}

// NewTodoValidator creates a new todo validator
func NewTodoValidator() *TodoValidator {
	return &TodoValidator{
		validator: NewValidator(),
	}
}

// ValidateTodoForCreation validates a todo creation payload: task required
// with length >= 3. The completed flag needs no checking here; whatever the
// payload says, creation stores false.
func (tv *TodoValidator) ValidateTodoForCreation(task string) error {
	if !tv.validator.IsNonEmptyString(task) {
		return NewRequiredError("task")
	}
	if !tv.validator.IsValidStringLength(task, TaskMinLength, 0) {
		return NewInvalidLengthError("task", task, TaskMinLength, 0)
	}
	return nil
}

// ValidateTodoForUpdate validates the fields present in an update payload.
// Both fields are optional; requiring at least one of them is a business
// rule enforced by the service, not a schema rule.
func (tv *TodoValidator) ValidateTodoForUpdate(task *string, completed *bool) error {
	if task != nil {
		if !tv.validator.IsNonEmptyString(*task) {
			return NewRequiredError("task")
		}
		if !tv.validator.IsValidStringLength(*task, TaskMinLength, 0) {
			return NewInvalidLengthError("task", *task, TaskMinLength, 0)
		}
	}
	return nil
}
