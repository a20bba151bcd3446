// Package database is the persistence gateway for tasks. It opens the
// configured SQL backend (an embedded SQLite file or PostgreSQL), applies the
// embedded goose migrations that guarantee the tasks table exists, hands out
// scoped connections, and provides the SQL implementation of store.TaskStore.
package database
