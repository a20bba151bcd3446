package service

import (
	"context"
	"errors"

	"github.com/phrazzld/task-tracker/internal/domain"
	"github.com/phrazzld/task-tracker/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a mock implementation of store.TaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeConns runs every callback without a real connection and counts
// acquisitions and releases.
type fakeConns struct {
	acquireErr error
	acquired   int
	released   int
}

var errAcquire = errors.New("pool exhausted")

func (f *fakeConns) WithConn(ctx context.Context, fn store.ConnFn) error {
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.acquired++
	defer func() { f.released++ }()
	return fn(ctx, nil)
}
