// Package testdb provides database fixtures for tests.
//
// Every SQLite fixture lives in its own t.TempDir(), so tests using it can
// run in parallel without sharing state. PostgreSQL fixtures are only
// available when DATABASE_URL is set; tests isolate themselves by running
// inside WithTx, which always rolls back.
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    gw := testdb.NewSQLiteGateway(t)
//	    ...
//	}
package testdb
