package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-tracker/internal/platform/logger"
)

// ConnFn is a function that runs on a single scoped connection.
type ConnFn func(ctx context.Context, conn DBTX) error

// RunWithConn acquires a dedicated connection from db, runs fn on it and
// releases the connection on every exit path. A panic inside fn is re-raised
// after the connection has been returned to the pool.
func RunWithConn(ctx context.Context, db *sql.DB, fn ConnFn) (err error) {
	log := logger.FromContext(ctx)

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire connection",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	defer func() {
		p := recover()
		if closeErr := conn.Close(); closeErr != nil {
			log.Error("failed to release connection",
				slog.String("error", closeErr.Error()))
			if err == nil && p == nil {
				err = fmt.Errorf("failed to release connection: %w", closeErr)
			}
		}
		if p != nil {
			log.Error("released connection after panic", slog.Any("panic", p))
			// ALLOW-PANIC: Propagating caught panic after releasing the connection
			panic(p)
		}
	}()

	return fn(ctx, conn)
}
