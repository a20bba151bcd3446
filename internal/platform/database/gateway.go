package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/phrazzld/task-tracker/internal/store"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Connection pool settings.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Gateway owns the connection pool for the configured backend.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// Open connects to the backend described by cfg and verifies the
// connection. For SQLite the database file is created if it is missing, so
// an unwritable location fails here rather than on first use.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Gateway, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dialect.dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	g := NewGateway(db, dialect, logger)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := g.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	g.logger.Info("database connection established",
		slog.String("dialect", string(dialect)))
	return g, nil
}

// NewGateway wraps an already opened pool.
func NewGateway(db *sql.DB, dialect Dialect, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "database")),
	}
}

// Dialect returns the backend dialect.
func (g *Gateway) Dialect() Dialect {
	return g.dialect
}

// DB returns the underlying pool.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// Acquire returns a dedicated connection. The caller must Close it.
func (g *Gateway) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// WithConn runs fn on a dedicated connection that is released on every
// exit path, including errors and panics inside fn.
func (g *Gateway) WithConn(ctx context.Context, fn store.ConnFn) error {
	return store.RunWithConn(ctx, g.db, fn)
}

// TaskStore returns a task store bound to conn.
func (g *Gateway) TaskStore(conn store.DBTX) store.TaskStore {
	return NewTaskStore(conn, g.dialect, g.logger)
}

// Ping verifies that the backend is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Close releases every pooled connection.
func (g *Gateway) Close() error {
	if err := g.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
