package drivers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrivers(t *testing.T) {
	constructors := map[string]func(string) (Driver, error){
		"mattn":   NewMattnDriver,
		"modernc": NewModerncDriver,
	}

	for name, newDriver := range constructors {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "db.sqlite3")

			driver, err := newDriver(path)
			require.NoError(t, err)

			assert.NoError(t, driver.PingContext(ctx))

			_, err = driver.ExecContext(ctx, `CREATE TABLE tasks (id INTEGER PRIMARY KEY)`)
			assert.NoError(t, err)

			tx, err := driver.BeginTx(ctx, nil)
			require.NoError(t, err)
			_, err = tx.ExecContext(ctx, `INSERT INTO tasks (id) VALUES (1)`)
			assert.NoError(t, err)
			require.NoError(t, tx.Commit())

			var count int
			err = driver.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
			assert.NoError(t, err)
			assert.Equal(t, 1, count)

			assert.NoError(t, driver.Close())
		})
	}
}

func TestBaseDriver(t *testing.T) {
	t.Run("should keep a single open connection", func(t *testing.T) {
		driver, err := NewMattnDriver(filepath.Join(t.TempDir(), "db.sqlite3"))
		require.NoError(t, err)
		defer driver.Close()

		base := driver.(*driverMattn).BaseDriver

		assert.Equal(t, 1, base.DB.Stats().MaxOpenConnections)
	})
}
