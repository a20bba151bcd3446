package store

import (
	"context"

	"github.com/phrazzld/task-tracker/internal/domain"
)

// TaskStore defines the persistence operations for tasks.
// Each method issues a single SQL statement.
type TaskStore interface {
	// List returns every stored task ordered by ID. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create inserts task and sets task.ID to the store-assigned identifier.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID returns the task with the given ID.
	// Returns ErrTaskNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update overwrites all mutable columns of the task identified by task.ID.
	// Returns ErrTaskNotFound if it does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes the task with the given ID.
	// Returns ErrTaskNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
