package helpers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ResolvePath returns the absolute location of a database file.
//
// Relative paths are resolved against the current working directory.
// Unlike a DSN for a new database, no directories are created.
//
// Parameters:
//   - path: the path to the database file
//
// Returns:
//   - string: the absolute path
//   - error: an error if the working directory cannot be read
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty database path")
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	return filepath.Join(currentDir, path), nil
}

// FileExists reports whether a file exists at path.
// A missing file is not an error, any other stat failure is.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("checking database file: %w", err)
}
