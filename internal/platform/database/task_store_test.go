package database_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/task-tracker/internal/domain"
	"github.com/phrazzld/task-tracker/internal/platform/database"
	"github.com/phrazzld/task-tracker/internal/store"
	"github.com/phrazzld/task-tracker/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseTaskStore runs the behaviour every backend must share.
func exerciseTaskStore(t *testing.T, s store.TaskStore) {
	t.Helper()
	ctx := context.Background()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, tasks)
	baseline := len(tasks)

	first := &domain.Task{Title: "Buy milk", DueDate: "2024-01-01", Status: domain.DefaultTaskStatus}
	require.NoError(t, s.Create(ctx, first))
	assert.Positive(t, first.ID)

	second := &domain.Task{Title: "Walk dog", Description: "around the block", Status: "Done"}
	require.NoError(t, s.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	tasks, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, baseline+2)
	assert.Equal(t, first.ID, tasks[baseline].ID)
	assert.Equal(t, second.ID, tasks[baseline+1].ID)

	updated := domain.MergeTask(*first, domain.TaskFields{Status: ptr("Done")})
	require.NoError(t, s.Update(ctx, &updated))
	got, err = s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Done", got.Status)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2024-01-01", got.DueDate)

	require.NoError(t, s.Delete(ctx, second.ID))
	_, err = s.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	third := &domain.Task{Title: "Third"}
	require.NoError(t, s.Create(ctx, third))
	assert.Greater(t, third.ID, second.ID, "ids must not be reused")

	missing := third.ID + 1000
	_, err = s.GetByID(ctx, missing)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Update(ctx, &domain.Task{ID: missing, Title: "x"}), store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Delete(ctx, missing), store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Delete(ctx, second.ID), store.ErrNotFound)
}

func ptr(s string) *string { return &s }

func TestTaskStore_SQLite(t *testing.T) {
	t.Parallel()

	gw := testdb.NewSQLiteGateway(t)
	exerciseTaskStore(t, gw.TaskStore(gw.DB()))
}

func TestTaskStore_SQLiteEmptyList(t *testing.T) {
	t.Parallel()

	gw := testdb.NewSQLiteGateway(t)
	tasks, err := gw.TaskStore(gw.DB()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskStore_SQLiteUnicodeRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := testdb.NewSQLiteGateway(t)
	s := database.NewTaskStore(gw.DB(), gw.Dialect(), nil)

	task := &domain.Task{Title: "Café ☕", Description: "日本語", Status: ""}
	require.NoError(t, s.Create(ctx, task))

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskStore_Postgres(t *testing.T) {
	gw := testdb.NewPostgresGateway(t)

	testdb.WithTx(t, gw.DB(), func(t *testing.T, tx *sql.Tx) {
		exerciseTaskStore(t, gw.TaskStore(tx))
	})
}
