package purge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lucasvillarinho/taskpurge/database"
	"github.com/lucasvillarinho/taskpurge/internal/helpers"
	"github.com/lucasvillarinho/taskpurge/internal/log"
)

const (
	// DefaultPath is the database file, relative to the working directory.
	DefaultPath = "backend/db.sqlite3"

	tasksTable = "tasks"
)

// Result holds the row counts reported by a purge.
type Result struct {
	Removed   int64
	Remaining int64
}

type Purger interface {
	PurgeAllTasks(ctx context.Context) (Result, error)
	Run(ctx context.Context) bool
}

type purger struct {
	logger log.Logger
	open   func(ctx context.Context, path string) (database.Database, error)
	path   string
	driver database.Driver
	vacuum bool
}

// NewPurger creates a purger for the tasks table and applies any provided options.
//
// Parameters:
//   - opts: the purger options
//
// Configuration defaults:
//   - path: DefaultPath
//   - driver: database.DriverMattn
//   - logger: console logger on stdout
//   - vacuum: false
//
// Returns:
//   - Purger: the purger instance
func NewPurger(opts ...Option) Purger {
	p := &purger{
		path:   DefaultPath,
		driver: database.DriverMattn,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = log.NewLogger(nil)
	}
	p.open = p.openDatabase

	return p
}

// PurgeAllTasks deletes every row of the tasks table.
//
// The database file must already exist, a missing file returns
// ErrDatabaseNotFound before any connection is opened. Driver failures
// are returned as *DatabaseError. The connection is closed on every
// path once opened.
//
// Parameters:
//   - ctx: the context
//
// Returns:
//   - Result: the number of rows removed and remaining
//   - error: an error if the operation failed
//
// ⚠️ WARNING: This operation is irreversible.
func (p *purger) PurgeAllTasks(ctx context.Context) (res Result, err error) {
	path, err := helpers.ResolvePath(p.path)
	if err != nil {
		return Result{}, fmt.Errorf("resolving database path: %w", err)
	}

	exists, err := helpers.FileExists(path)
	if err != nil {
		return Result{}, err
	}
	if !exists {
		return Result{}, fmt.Errorf("%w: %s", ErrDatabaseNotFound, p.path)
	}

	db, err := p.open(ctx, path)
	if err != nil {
		return Result{}, dbError("open database", err)
	}
	defer func() {
		closeErr := db.Close(ctx)
		if closeErr != nil && err == nil {
			err = dbError("close database", closeErr)
		}
	}()

	if err := db.Ping(ctx); err != nil {
		return Result{}, dbError("open database", err)
	}

	before, err := countTasks(ctx, db)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info(ctx, fmt.Sprintf("Найдено %d задач в базе данных", before))

	if err := deleteTasks(ctx, db); err != nil {
		return Result{}, err
	}

	if p.vacuum {
		if err := db.Vacuum(ctx); err != nil {
			return Result{}, dbError("vacuum database", err)
		}
	}

	after, err := countTasks(ctx, db)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info(ctx, fmt.Sprintf("Удалено %d задач. Осталось %d задач.", before, after))

	return Result{Removed: before, Remaining: after}, nil
}

// Run purges the tasks table and reports the outcome.
// Each failure is logged as a single line and turned into false.
func (p *purger) Run(ctx context.Context) bool {
	_, err := p.PurgeAllTasks(ctx)
	if err == nil {
		return true
	}

	var dbErr *DatabaseError
	switch {
	case errors.Is(err, ErrDatabaseNotFound):
		p.logger.Error(ctx, fmt.Sprintf("Ошибка: файл базы данных не найден по пути %s", p.path))
	case errors.As(err, &dbErr):
		p.logger.Error(ctx, fmt.Sprintf("Ошибка при работе с базой данных: %v", dbErr))
	default:
		p.logger.Error(ctx, fmt.Sprintf("Неожиданная ошибка: %v", err))
	}

	return false
}

func (p *purger) openDatabase(ctx context.Context, path string) (database.Database, error) {
	return database.NewDatabase(ctx, path, database.WithDriver(p.driver))
}

// countTasks returns the number of rows in the tasks table.
func countTasks(ctx context.Context, db database.Database) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").From(tasksTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}

	var count int64
	err = db.GetEngine(ctx).QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, dbError("count tasks", err)
	}

	return count, nil
}

// deleteTasks removes every row of the tasks table and commits.
func deleteTasks(ctx context.Context, db database.Database) error {
	query, args, err := sq.Delete(tasksTable).ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	err = db.ExecWithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return dbError("delete tasks", err)
	}

	return nil
}
