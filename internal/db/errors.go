package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql" // Raw MySQL error numbers
	"github.com/jackc/pgx/v5/pgconn"          // Raw PostgreSQL SQLSTATE codes
	"gorm.io/gorm"
)

// Storage errors surfaced to the API layer
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotFound            = errors.New("record not found")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// MySQL server error numbers
const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
	mysqlNoReferencedOld = 1216
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify wraps err with the matching sentinel so callers can use errors.Is.
// Unrecognised errors are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return wrap(ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return wrap(ErrForeignKeyViolation, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return wrap(ErrNotFound, err)
	}

	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return wrap(ErrUniqueViolation, err)
		case mysqlNoReferencedRow, mysqlNoReferencedOld:
			return wrap(ErrForeignKeyViolation, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return wrap(ErrForeignKeyViolation, err)
		}
	}

	// SQLite reports constraint failures by message only
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return wrap(ErrUniqueViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return wrap(ErrForeignKeyViolation, err)
	}

	if isConnError(err) {
		return wrap(ErrStorageUnavailable, err)
	}
	return err
}

func isConnError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysqldrv.ErrInvalidConn) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}

func wrap(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
