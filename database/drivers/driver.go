package drivers

import (
	"context"
	"database/sql"
)

// Driver is the subset of *sql.DB the database layer relies on.
type Driver interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	PingContext(ctx context.Context) error
	Close() error
}

// BaseDriver is a base implementation that satisfies the Driver interface.
type BaseDriver struct {
	DB *sql.DB
}

// newBaseDriver limits the pool to a single connection,
// sqlite allows one writer per file.
func newBaseDriver(db *sql.DB) BaseDriver {
	db.SetMaxOpenConns(1)
	return BaseDriver{DB: db}
}

// ExecContext executes a command that does not return rows, such as INSERT, UPDATE, or DELETE.
func (d *BaseDriver) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.DB.ExecContext(ctx, query, args...)
}

// QueryRowContext executes a SELECT command that returns a single row.
func (d *BaseDriver) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.DB.QueryRowContext(ctx, query, args...)
}

// BeginTx starts a new transaction.
func (d *BaseDriver) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.DB.BeginTx(ctx, opts)
}

// PingContext forces the lazy connection open.
func (d *BaseDriver) PingContext(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close closes the database connection.
func (d *BaseDriver) Close() error {
	return d.DB.Close()
}
