package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication_UnwritablePath(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Database.Path = "/nonexistent-dir/sub/todo.db"

	_, err := newApplication(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestNewApplication_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Database = config.DatabaseConfig{Driver: "mysql"}

	_, err := newApplication(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestCleanup_ClosesDatabase(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.cleanup()

	assert.Error(t, app.gateway.Ping(context.Background()))
}

func TestServe_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, ln, app.setupRouter())
	}()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ListenerFailure(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = app.serve(context.Background(), ln, http.NotFoundHandler())
	assert.Error(t, err)
}

func TestRun_InitOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")
	t.Setenv("TASKTRACKER_DATABASE_PATH", path)
	t.Setenv("TASKTRACKER_SERVER_LOG_LEVEL", "error")

	require.NoError(t, run(context.Background(), true))

	info, err := os.Stat(path)
	require.NoError(t, err, "database file should be created")
	assert.False(t, info.IsDir())

	// A second initialization against the existing file is a no-op.
	assert.NoError(t, run(context.Background(), true))
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("TASKTRACKER_SERVER_PORT", "70000")

	err := run(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
