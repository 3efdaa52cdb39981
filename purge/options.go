package purge

import (
	"github.com/lucasvillarinho/taskpurge/database"
	"github.com/lucasvillarinho/taskpurge/internal/log"
)

// Option is a function that configures a purger instance.
type Option func(*purger)

// WithPath sets the path to the database file.
// Relative paths are resolved against the working directory.
func WithPath(path string) Option {
	return func(p *purger) {
		p.path = path
	}
}

// WithDriver sets the sqlite driver used to open the database file.
func WithDriver(driver database.Driver) Option {
	return func(p *purger) {
		p.driver = driver
	}
}

// WithLogger sets the logger receiving the status lines.
func WithLogger(logger log.Logger) Option {
	return func(p *purger) {
		p.logger = logger
	}
}

// WithVacuum rebuilds the database file after the tasks are deleted.
func WithVacuum(vacuum bool) Option {
	return func(p *purger) {
		p.vacuum = vacuum
	}
}
