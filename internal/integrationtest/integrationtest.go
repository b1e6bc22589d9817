// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/friendbank/friendbank/cmd/httpserver"
	"github.com/friendbank/friendbank/internal/middleware"
	"github.com/friendbank/friendbank/pkg/configpkg"
	"github.com/friendbank/friendbank/pkg/dbpkg"
)

// SetupServer returns test server that cleans up database after each integration test.
func SetupServer(t *testing.T) *httpserver.Server {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(db, logger, config) returned error: %v`, err)
	}

	return server
}

// Flush truncates all db tables and reseeds the supply counters.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	const truncate = `
	TRUNCATE TABLE sessions, audit_log, transactions, accounts, users CASCADE;`

	if _, err := db.Exec(truncate); err != nil {
		t.Fatalf("db cleanup failed: %v", err)
	}

	const reseed = `
	UPDATE total_supply SET total_amount = 0;
	UPDATE transaction_count SET count = 0;`

	if _, err := db.Exec(reseed); err != nil {
		t.Fatalf("db cleanup failed: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed: %v", err)
		}
	})

	return db
}
