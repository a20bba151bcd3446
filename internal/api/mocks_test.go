package api

import (
	"context"

	"github.com/phrazzld/task-tracker/internal/domain"
)

// mockTaskService is a function-field implementation of service.TaskService.
type mockTaskService struct {
	ListTasksFn  func(ctx context.Context) ([]*domain.Task, error)
	CreateTaskFn func(ctx context.Context, fields domain.TaskFields) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error
}

func (m *mockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return m.ListTasksFn(ctx)
}

func (m *mockTaskService) CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error) {
	return m.CreateTaskFn(ctx, fields)
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return m.GetTaskFn(ctx, id)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error) {
	return m.UpdateTaskFn(ctx, id, fields)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	return m.DeleteTaskFn(ctx, id)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
