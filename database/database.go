package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasvillarinho/taskpurge/database/drivers"
)

type database struct {
	engine drivers.Driver
	driver Driver
	dsn    string
}

type Database interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Vacuum(ctx context.Context) error
	GetEngine(ctx context.Context) drivers.Driver
	ExecWithTx(ctx context.Context, fn func(*sql.Tx) error) error
	Exec(ctx context.Context, query string, args ...interface{}) error

	SetEngine(ctx context.Context, driver Driver) error
}

// NewDatabase creates a new database instance for the sqlite file at dsn
// and applies any provided options.
//
// The file is opened lazily by the driver, callers that must not create
// the file check for it before calling NewDatabase.
//
// Parameters:
//   - ctx: the context
//   - dsn: the path to the database file
//   - opts: the database options
//
// Configuration defaults:
//   - driver: DriverMattn
//
// Returns:
//   - Database: the database instance
//   - error: an error if the operation failed
func NewDatabase(ctx context.Context, dsn string, opts ...Option) (Database, error) {
	db := &database{
		dsn:    dsn,
		driver: DriverMattn,
	}

	for _, opt := range opts {
		opt(db)
	}

	if db.engine != nil {
		return db, nil
	}

	err := db.SetEngine(ctx, db.driver)
	if err != nil {
		return nil, fmt.Errorf("error setting up engine: %w", err)
	}

	return db, nil
}

// SetEngine creates a new database engine with the given driver and DSN.
//
// Parameters:
//   - ctx: the context
//   - driver: the database driver
//
// Returns:
//   - error: an error if the operation failed
//
// Example:
//
//	db, err := database.NewDatabase(ctx, "backend/db.sqlite3")
//	if err != nil {
//		return err
//	}
//	defer db.Close(ctx)
//
//	err = db.SetEngine(ctx, database.DriverModernc)
//	if err != nil {
//		return err
//	}
func (db *database) SetEngine(_ context.Context, driver Driver) error {
	engine, err := NewEngine(driver, db.dsn)
	if err != nil {
		return fmt.Errorf("error creating driver: %w", err)
	}

	if db.engine != nil {
		_ = db.engine.Close()
	}
	db.engine = engine
	db.driver = driver

	return nil
}

// Ping opens the underlying connection and checks that it is usable.
func (db *database) Ping(ctx context.Context) error {
	if err := db.engine.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close releases the connection and any file lock held on the database.
func (db *database) Close(_ context.Context) error {
	return db.engine.Close()
}

// Vacuum runs a VACUUM operation on the database.
// This operation rebuilds the database file, repacking it into a minimal amount of disk space.
//
// Parameters:
//   - ctx: the context
//
// Returns:
//   - error: an error if the operation failed
//
// ⚠️ WARNING: This operation may take a long time to complete on large databases.
func (db *database) Vacuum(ctx context.Context) error {
	_, err := db.engine.ExecContext(ctx, "VACUUM;")
	if err != nil {
		return fmt.Errorf("vacuuming: %w", err)
	}
	return nil
}

// GetEngine returns the database engine.
func (db *database) GetEngine(_ context.Context) drivers.Driver {
	return db.engine
}

// ExecWithTx executes a function within a transaction.
// The transaction is committed when fn succeeds and rolled back otherwise.
//
// Parameters:
//   - ctx: the context
//   - fn: the function to execute
//
// Returns:
//   - error: an error if the operation failed
func (db *database) ExecWithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.engine.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	err = fn(tx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back transaction: %w", rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Exec executes a query with the given arguments.
//
// Parameters:
//   - ctx: the context
//   - query: the query to execute
//   - args: the query arguments
//
// Returns:
//   - error: an error if the operation failed
func (db *database) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := db.engine.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
