package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"freelance_board/internal/config"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			"mysql",
			config.Config{DBDriver: "mysql", DBUser: "u", DBPassword: "p", DBHost: "h", DBName: "board"},
			"u:p@tcp(h:3306)/board?parseTime=true&charset=utf8mb4",
		},
		{
			"postgres",
			config.Config{DBDriver: "postgres", DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "6543", DBName: "board"},
			"host=h user=u password=p dbname=board port=6543 sslmode=disable",
		},
		{
			"sqlite",
			config.Config{DBDriver: "sqlite", DBName: "/tmp/x.db"},
			"/tmp/x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DSN(&tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := DSN(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSQLiteDSN_ExistingQuery(t *testing.T) {
	assert.Equal(t, "file.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN("file.db?mode=rwc"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrUniqueViolation},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrForeignKeyViolation},
		{"gorm not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"mysql duplicate", &mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry"}, ErrUniqueViolation},
		{"mysql foreign key", &mysqldrv.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, ErrForeignKeyViolation},
		{"postgres duplicate", &pgconn.PgError{Code: "23505"}, ErrUniqueViolation},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, ErrForeignKeyViolation},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: users.wallet_address (2067)"), ErrUniqueViolation},
		{"sqlite foreign key", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), ErrForeignKeyViolation},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), ErrStorageUnavailable},
		{"closed", errors.New("sql: database is closed"), ErrStorageUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			assert.ErrorIs(t, got, tc.want)
			assert.ErrorIs(t, got, tc.err) // cause is kept
		})
	}

	other := errors.New("boom")
	assert.Same(t, other, classify(other))
	assert.NoError(t, classify(nil))
}
