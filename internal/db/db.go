package db

import (
	"fmt"                             // DSN formatting
	"freelance_board/internal/config" // Custom package for configuration
	"strings"                         // DSN checks
	"time"                            // Slow query threshold

	"github.com/glebarez/sqlite"  // Pure-Go SQLite driver for GORM
	"github.com/sirupsen/logrus"  // Logrus for structured logging
	"gorm.io/driver/mysql"        // MySQL driver for GORM
	"gorm.io/driver/postgres"     // PostgreSQL driver for GORM
	"gorm.io/gorm"                // GORM ORM library
	gormlogger "gorm.io/gorm/logger"
)

// Supported values of DB_DRIVER
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DSN builds the data source name for the configured driver
func DSN(cfg *config.Config) (string, error) {
	switch cfg.DBDriver {
	case DriverMySQL, "":
		port := cfg.DBPort
		if port == "" {
			port = "3306"
		}
		return cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + port + ")/" + cfg.DBName + "?parseTime=true&charset=utf8mb4", nil
	case DriverPostgres:
		port := cfg.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port), nil
	case DriverSQLite:
		name := cfg.DBName
		if name == "" {
			name = "freelance_board.db"
		}
		return SQLiteDSN(name), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// SQLiteDSN appends the pragmas the schema relies on (foreign keys are off by default in SQLite)
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open connects to the configured database and sizes the connection pool
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	var dialector gorm.Dialector // Driver picked from config
	switch cfg.DBDriver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		dialector = mysql.Open(dsn)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(cfg.IsProd),
		TranslateError: true, // Map driver errors to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	sqlDB, err := gdb.DB() // Underlying connection pool
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	logrus.WithFields(logrus.Fields{
		"driver":         cfg.DBDriver,
		"max_open_conns": cfg.DBMaxOpenConns,
		"max_idle_conns": cfg.DBMaxIdleConns,
	}).Info("Database connected")
	return gdb, nil
}

// newGormLogger routes GORM output through logrus
func newGormLogger(isProd bool) gormlogger.Interface {
	level := gormlogger.Warn
	if isProd {
		level = gormlogger.Silent
	}
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true, // Lookups that miss are not errors
	})
}
