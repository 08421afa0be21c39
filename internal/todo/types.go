package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Task represents a single to-do item.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == ""
}

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventToggled EventKind = "toggled"
)

// Event describes an applied mutation. Task is the task state after the
// mutation.
type Event struct {
	Kind EventKind
	Task Task
}

// ErrEmptyTitle is returned by ValidateTitle for blank titles.
var ErrEmptyTitle = errors.New("title must not be empty")

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateTitle checks the non-empty title precondition of Add.
// Whitespace-only titles are treated as empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Path: "title", Err: ErrEmptyTitle}
	}
	return nil
}
