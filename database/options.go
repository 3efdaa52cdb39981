package database

import "github.com/lucasvillarinho/taskpurge/database/drivers"

// Option configures a database instance.
type Option func(*database)

// WithDriver selects the sqlite driver used to open the file.
// Defaults to DriverMattn.
func WithDriver(driver Driver) Option {
	return func(db *database) {
		db.driver = driver
	}
}

// WithEngine uses an already opened engine instead of opening one from the path.
func WithEngine(engine drivers.Driver) Option {
	return func(db *database) {
		db.engine = engine
	}
}
