package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/task-tracker/internal/domain"
	"github.com/phrazzld/task-tracker/internal/platform/logger"
	"github.com/phrazzld/task-tracker/internal/store"
)

// ConnectionProvider hands out scoped connections.
// *database.Gateway satisfies it.
type ConnectionProvider interface {
	// WithConn runs fn on a dedicated connection and releases it afterwards.
	WithConn(ctx context.Context, fn store.ConnFn) error
}

// StoreFactory binds a TaskStore to a connection.
type StoreFactory func(conn store.DBTX) store.TaskStore

// TaskService provides the task operations exposed over HTTP.
type TaskService interface {
	// ListTasks returns every task ordered by ID.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask validates fields, applies defaults and stores the new task.
	CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error)

	// GetTask returns one task or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask merges the supplied fields into the stored task.
	// Fields left nil keep their stored values.
	UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error)

	// DeleteTask removes a task or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	conns  ConnectionProvider
	stores StoreFactory
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(conns ConnectionProvider, stores StoreFactory, logger *slog.Logger) (TaskService, error) {
	if conns == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "connection provider cannot be nil"}
	}
	if stores == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "store factory cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		conns:  conns,
		stores: stores,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// withStore runs fn with a TaskStore bound to a scoped connection.
func (s *taskServiceImpl) withStore(ctx context.Context, fn func(ctx context.Context, ts store.TaskStore) error) error {
	return s.conns.WithConn(ctx, func(ctx context.Context, conn store.DBTX) error {
		return fn(ctx, s.stores(conn))
	})
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		var err error
		tasks, err = ts.List(ctx)
		return err
	})
	if err != nil {
		s.log(ctx).Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error) {
	task, err := domain.NewTask(fields)
	if err != nil {
		s.log(ctx).Debug("rejected task", slog.String("error", err.Error()))
		return nil, err
	}

	err = s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		return ts.Create(ctx, task)
	})
	if err != nil {
		s.log(ctx).Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.log(ctx).Info("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var task *domain.Task
	err := s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		var err error
		task, err = ts.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to get task",
				slog.Int64("task_id", id),
				slog.String("error", err.Error()))
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService. The read and the write share one
// connection; concurrent updates of the same task are last-writer-wins.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	fields domain.TaskFields,
) (*domain.Task, error) {
	var updated domain.Task
	err := s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		current, err := ts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = domain.MergeTask(*current, fields)
		return ts.Update(ctx, &updated)
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to update task",
				slog.Int64("task_id", id),
				slog.String("error", err.Error()))
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.log(ctx).Info("task updated", slog.Int64("task_id", id))
	return &updated, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	err := s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		return ts.Delete(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log(ctx).Error("failed to delete task",
				slog.Int64("task_id", id),
				slog.String("error", err.Error()))
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Info("task deleted", slog.Int64("task_id", id))
	return nil
}
