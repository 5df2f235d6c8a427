package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")
	if DebugEnabled() {
		t.Errorf("DebugEnabled() = true, want false when TODO_DEBUG is unset")
	}

	t.Setenv("TODO_DEBUG", "1")
	if !DebugEnabled() {
		t.Errorf("DebugEnabled() = false, want true when TODO_DEBUG is set")
	}
}
