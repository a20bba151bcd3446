package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "todo.db"),
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApp builds an application on an isolated SQLite database.
func newTestApp(t *testing.T) *application {
	t.Helper()

	app, err := newApplication(context.Background(), testConfig(t), quietLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

// newTestServer serves the full router of an isolated application.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(newTestApp(t).setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r apiResponse) object(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), "body: %s", r.body)
	return out
}

func (r apiResponse) tasks(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), "body: %s", r.body)
	return out
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{status: resp.StatusCode, header: resp.Header, body: data}
}

// createTask posts body and returns the new task id.
func createTask(t *testing.T, srv *httptest.Server, body string) int64 {
	t.Helper()

	resp := call(t, srv, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusCreated, resp.status, "body: %s", resp.body)
	obj := resp.object(t)
	require.Equal(t, "Task created successfully", obj["message"])
	id, ok := obj["id"].(float64)
	require.True(t, ok, "id should be a number")
	return int64(id)
}
