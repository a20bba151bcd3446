package store_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/phrazzld/task-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "conn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunWithConn(t *testing.T) {
	ctx := context.Background()

	t.Run("runs fn and releases connection", func(t *testing.T) {
		db := openTestDB(t)

		var got int
		err := store.RunWithConn(ctx, db, func(ctx context.Context, conn store.DBTX) error {
			assert.Equal(t, 1, db.Stats().InUse, "connection should be held while fn runs")
			return conn.QueryRowContext(ctx, "SELECT 1").Scan(&got)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, got)
		assert.Equal(t, 0, db.Stats().InUse)
	})

	t.Run("releases connection on error", func(t *testing.T) {
		db := openTestDB(t)
		sentinel := errors.New("boom")

		err := store.RunWithConn(ctx, db, func(ctx context.Context, conn store.DBTX) error {
			return sentinel
		})

		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 0, db.Stats().InUse)
	})

	t.Run("releases connection on panic", func(t *testing.T) {
		db := openTestDB(t)

		assert.PanicsWithValue(t, "kaboom", func() {
			_ = store.RunWithConn(ctx, db, func(ctx context.Context, conn store.DBTX) error {
				panic("kaboom")
			})
		})
		assert.Equal(t, 0, db.Stats().InUse)
	})

	t.Run("acquire failure", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.Close())

		called := false
		err := store.RunWithConn(ctx, db, func(ctx context.Context, conn store.DBTX) error {
			called = true
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to acquire connection")
		assert.False(t, called)
	})
}
