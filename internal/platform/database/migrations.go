package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/task-tracker/internal/platform/logger"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

//go:embed migrations
var embeddedMigrations embed.FS

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at debug level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf forwards goose failures at error level.
// Unlike the goose default it does not exit; the error is returned by Up.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// InitializeSchema applies the embedded migrations, creating the tasks table
// if it does not exist. It is safe to call on every start and concurrently
// against an already initialized database; existing rows are never touched.
// PostgreSQL runs hold a session advisory lock for the duration.
func (g *Gateway) InitializeSchema(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, g.logger).With(slog.String("dialect", string(g.dialect)))

	fsys, err := g.dialect.migrations()
	if err != nil {
		log.Error("failed to load embedded migrations", slog.String("error", err.Error()))
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	opts := []goose.ProviderOption{
		goose.WithLogger(&slogGooseLogger{logger: log}),
		goose.WithVerbose(true),
	}
	if g.dialect == DialectPostgres {
		locker, err := lock.NewPostgresSessionLocker()
		if err != nil {
			return fmt.Errorf("failed to create migration lock: %w", err)
		}
		opts = append(opts, goose.WithSessionLocker(locker))
	}

	provider, err := goose.NewProvider(g.dialect.gooseDialect(), g.db, fsys, opts...)
	if err != nil {
		log.Error("failed to create migration provider", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Error("failed to initialize schema", slog.String("error", err.Error()))
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	for _, r := range results {
		log.Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Int64("duration_ms", r.Duration.Milliseconds()))
	}

	log.Info("database schema ready", slog.Int("applied", len(results)))
	return nil
}
