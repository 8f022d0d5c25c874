package store

import (
	"context"
	"embed"
	"fmt"
	"strings"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/sbilibin2017/hbnb/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Dialect returns the goqu dialect name matching a driver.
func Dialect(driver string) string {
	if driver == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// PostgresDSN builds a connection string for the production store.
func PostgresDSN(host string, port int, user, password, db string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, password, host, port, db)
}

// SQLiteDSN builds a connection string for a file-backed development store
// with foreign keys enforced on every connection.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open connects to the store and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single writer avoids SQLITE_BUSY between the pool's connections.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate applies the embedded schema for the given driver. Statements are
// idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	name := "schema/postgres.sql"
	if driver == DriverSQLite {
		name = "schema/sqlite.sql"
	}

	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return err
	}

	for _, stmt := range strings.Split(string(data), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema statement failed", "statement", strings.Join(strings.Fields(stmt), " "), "error", err)
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
