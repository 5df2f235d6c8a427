package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTodoValidator_ValidateTodoForCreation(t *testing.T) {
	tv := NewTodoValidator()

	tests := []struct {
		name        string
		task        string
		wantMessage string
	}{
		{
			name: "valid task",
			task: "buy milk",
		},
		{
			name: "task at minimum length",
			task: "abc",
		},
		{
			name:        "missing task",
			task:        "",
			wantMessage: "task is required",
		},
		{
			name:        "whitespace only task",
			task:        "   ",
			wantMessage: "task is required",
		},
		{
			name:        "task too short",
			task:        "ab",
			wantMessage: "task must be at least 3 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTodoForCreation(tt.task)

			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, validationErr.GetUserFriendlyMessage())
		})
	}
}

func TestTodoValidator_ValidateTodoForUpdate(t *testing.T) {
	tv := NewTodoValidator()

	tests := []struct {
		name        string
		task        *string
		completed   *bool
		wantMessage string
	}{
		{
			name: "task only",
			task: strPtr("new description"),
		},
		{
			name:      "completed only",
			completed: boolPtr(true),
		},
		{
			name:      "both fields",
			task:      strPtr("new description"),
			completed: boolPtr(false),
		},
		{
			// The at-least-one-field rule lives in the service, not here
			name: "no fields is schema-valid",
		},
		{
			name:        "task too short",
			task:        strPtr("ab"),
			wantMessage: "task must be at least 3 characters long",
		},
		{
			name:        "empty task",
			task:        strPtr(""),
			wantMessage: "task is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateTodoForUpdate(tt.task, tt.completed)

			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, validationErr.GetUserFriendlyMessage())
		})
	}
}
