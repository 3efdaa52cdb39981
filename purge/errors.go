package purge

import (
	"errors"
	"fmt"
)

// ErrDatabaseNotFound is returned when the database file does not exist.
// No connection is attempted in that case.
var ErrDatabaseNotFound = errors.New("database file not found")

// DatabaseError is a failure reported by the sqlite driver while the
// connection is open: a locked or corrupted file, a missing table.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func dbError(op string, err error) error {
	return &DatabaseError{Op: op, Err: err}
}
