package taskpurge

import (
	"github.com/lucasvillarinho/taskpurge/purge"
)

// NewPurger creates a purger for the tasks table of the local database file.
func NewPurger(opts ...purge.Option) purge.Purger {
	return purge.NewPurger(opts...)
}
