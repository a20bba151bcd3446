package testdb

import "os"

// testDatabaseURLVars lists the variables consulted for a PostgreSQL URL,
// in order of precedence.
var testDatabaseURLVars = []string{"DATABASE_URL", "TASKTRACKER_TEST_DB_URL", "TASKTRACKER_DATABASE_URL"}

// GetTestDatabaseURL returns the first configured PostgreSQL URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range testDatabaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether PostgreSQL tests must be skipped
// because no database URL is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}
