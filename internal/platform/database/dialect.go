package database

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/phrazzld/task-tracker/internal/config"
	"github.com/pressly/goose/v3"
)

// Dialect identifies the SQL backend behind a Gateway.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = config.DriverSQLite
	DialectPostgres Dialect = config.DriverPostgres
)

// sqliteBusyTimeoutMillis makes concurrent writers wait for the file lock
// instead of failing immediately with SQLITE_BUSY.
const sqliteBusyTimeoutMillis = 5000

// ParseDialect maps a configured driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(strings.ToLower(driver)) {
	case DialectSQLite:
		return DialectSQLite, nil
	case DialectPostgres:
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// driverName returns the database/sql driver registered for the dialect.
func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// dataSourceName builds the driver DSN from the configuration.
func (d Dialect) dataSourceName(cfg config.DatabaseConfig) (string, error) {
	switch d {
	case DialectSQLite:
		if cfg.Path == "" {
			return "", fmt.Errorf("database path is empty: check TASKTRACKER_DATABASE_PATH")
		}
		return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, sqliteBusyTimeoutMillis), nil
	case DialectPostgres:
		if cfg.URL == "" {
			return "", fmt.Errorf("database URL is empty: check TASKTRACKER_DATABASE_URL")
		}
		return cfg.URL, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

func (d Dialect) gooseDialect() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

// migrations returns the migration files for the dialect.
func (d Dialect) migrations() (fs.FS, error) {
	return fs.Sub(embeddedMigrations, "migrations/"+string(d))
}

// Rebind rewrites '?' placeholders into the dialect's native form.
// Queries in this package never contain '?' inside string literals.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
