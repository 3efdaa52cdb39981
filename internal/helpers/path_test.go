package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	t.Run("should keep an absolute path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backend", "..", "db.sqlite3")

		resolved, err := ResolvePath(path)

		assert.NoError(t, err)
		assert.Equal(t, filepath.Clean(path), resolved)
	})

	t.Run("should resolve a relative path against the working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		resolved, err := ResolvePath("backend/db.sqlite3")

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "backend", "db.sqlite3"), resolved)
	})

	t.Run("should not create missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "backend")

		_, err := ResolvePath(filepath.Join(dir, "db.sqlite3"))

		assert.NoError(t, err)
		assert.NoDirExists(t, dir)
	})

	t.Run("should reject an empty path", func(t *testing.T) {
		resolved, err := ResolvePath("")

		assert.Empty(t, resolved)
		assert.EqualError(t, err, "empty database path")
	})
}

func TestFileExists(t *testing.T) {
	t.Run("should report an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.sqlite3")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		exists, err := FileExists(path)

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("should report a missing file without error", func(t *testing.T) {
		exists, err := FileExists(filepath.Join(t.TempDir(), "missing.sqlite3"))

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
