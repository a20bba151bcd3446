package testdb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/phrazzld/task-tracker/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds fixture setup.
const TestTimeout = 10 * time.Second

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SQLitePath returns a fresh database file path inside t.TempDir().
func SQLitePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todo.db")
}

// OpenSQLite opens a gateway on the SQLite file at path without applying
// migrations. The gateway is closed when the test finishes.
func OpenSQLite(t *testing.T, path string) *database.Gateway {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	gw, err := database.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   path,
	}, quietLogger())
	require.NoError(t, err, "failed to open sqlite database")

	t.Cleanup(func() {
		_ = gw.Close()
	})
	return gw
}

// NewSQLiteGateway returns a gateway on an isolated, initialized SQLite
// database.
func NewSQLiteGateway(t *testing.T) *database.Gateway {
	t.Helper()

	gw := OpenSQLite(t, SQLitePath(t))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, gw.InitializeSchema(ctx), "failed to initialize schema")

	return gw
}

// NewPostgresGateway returns an initialized gateway on the configured
// PostgreSQL database, skipping the test when none is configured.
func NewPostgresGateway(t *testing.T) *database.Gateway {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("DATABASE_URL not set - skipping PostgreSQL test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	gw, err := database.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverPostgres,
		URL:    GetTestDatabaseURL(),
	}, quietLogger())
	require.NoError(t, err, "failed to connect to postgres")
	t.Cleanup(func() {
		_ = gw.Close()
	})

	require.NoError(t, gw.InitializeSchema(ctx), "failed to initialize schema")
	return gw
}
