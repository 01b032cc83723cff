package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"productcatalog/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var DB *sql.DB

// Initialize opens the database, applies the schema and, when seed is set,
// fills empty category/product tables with sample data.
func Initialize(ctx context.Context, driver, dsn string, seed bool) error {
	db, err := Open(driver, dsn)
	if err != nil {
		return err
	}

	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if seed {
		if err := Seed(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	DB = db
	logger.Info("Database initialized successfully (%s)", driver)
	return nil
}

// Open connects to the database and verifies the connection.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serialises writers anyway; one connection also keeps
	// ":memory:" databases alive for the lifetime of the pool.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// Migrate creates the tables and indexes used by the application.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	statements, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute SQL: %w", err)
		}
	}
	return nil
}

// Close 데이터베이스 연결 종료
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
