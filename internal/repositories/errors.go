package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Constraint violations reported by the store. The driver error stays in the
// chain for logging.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintError wraps err with ErrUniqueViolation or ErrForeignKeyViolation
// when the driver reports one. Other errors are returned unchanged.
func constraintError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case sqlite3.SQLITE_CONSTRAINT:
			// without extended result codes only the message tells them apart
			msg := liteErr.Error()
			if strings.Contains(msg, "UNIQUE constraint failed") {
				return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
			}
			if strings.Contains(msg, "FOREIGN KEY constraint failed") {
				return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
			}
		}
	}
	return err
}
