package domain

import "fmt"

// DefaultTaskStatus is assigned to tasks created without a status.
const DefaultTaskStatus = "Pending"

// ErrEmptyTaskTitle is returned when a task is created without a title.
var ErrEmptyTaskTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

// Task is a single to-do item. Status is free text; no transitions are enforced.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     string
	Status      string
}

// TaskFields carries the caller-supplied mutable fields of a task.
// A nil pointer means the field was not supplied.
type TaskFields struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *string
}

// NewTask builds a task from the supplied fields, applying defaults
// for the optional ones. The ID is left zero for the store to assign.
func NewTask(fields TaskFields) (*Task, error) {
	task := &Task{
		Title:       valueOr(fields.Title, ""),
		Description: valueOr(fields.Description, ""),
		DueDate:     valueOr(fields.DueDate, ""),
		Status:      valueOr(fields.Status, DefaultTaskStatus),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the invariants a task must satisfy at creation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}

// MergeTask returns current with every supplied field replaced.
// Fields absent from fields keep their current values; the ID never changes.
func MergeTask(current Task, fields TaskFields) Task {
	return Task{
		ID:          current.ID,
		Title:       valueOr(fields.Title, current.Title),
		Description: valueOr(fields.Description, current.Description),
		DueDate:     valueOr(fields.DueDate, current.DueDate),
		Status:      valueOr(fields.Status, current.Status),
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
