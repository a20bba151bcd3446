package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/task-tracker/internal/domain"
	"github.com/phrazzld/task-tracker/internal/platform/logger"
	"github.com/phrazzld/task-tracker/internal/store"
)

const (
	taskColumns = `id, title, description, due_date, status`

	listTasksSQL  = `SELECT ` + taskColumns + ` FROM tasks ORDER BY id`
	getTaskSQL    = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	createTaskSQL = `INSERT INTO tasks (title, description, due_date, status) VALUES (?, ?, ?, ?) RETURNING id`
	updateTaskSQL = `UPDATE tasks SET title = ?, description = ?, due_date = ?, status = ? WHERE id = ?`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = ?`
)

// TaskStore implements store.TaskStore with plain SQL.
type TaskStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore that issues its statements through db.
func NewTaskStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "task_store")),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row. Nullable columns from older databases read as "".
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task                         domain.Task
		description, dueDate, status sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &dueDate, &status); err != nil {
		return nil, err
	}
	task.Description = description.String
	task.DueDate = dueDate.String
	task.Status = status.String
	return &task, nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(listTasksSQL))
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(createTaskSQL),
		task.Title, task.Description, task.DueDate, task.Status).Scan(&id)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	task.ID = id
	log.Debug("task created", slog.Int64("task_id", id))
	return nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, s.dialect.Rebind(getTaskSQL), id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "get", "query failed", MapError(err))
	}
	return task, nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(updateTaskSQL),
		task.Title, task.Description, task.DueDate, task.Status, task.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "update", "update failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(deleteTaskSQL), id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
