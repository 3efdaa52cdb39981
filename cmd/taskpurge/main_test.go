package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvillarinho/taskpurge/database"
	"github.com/lucasvillarinho/taskpurge/purge"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("should print the start and success lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.sqlite3")

		db, err := database.NewDatabase(ctx, path)
		require.NoError(t, err)
		require.NoError(t, db.Exec(ctx, `CREATE TABLE tasks (id TEXT PRIMARY KEY, title TEXT)`))
		require.NoError(t, db.Exec(ctx, `INSERT INTO tasks (id, title) VALUES ('1', 'a'), ('2', 'b'), ('3', 'c')`))
		require.NoError(t, db.Close(ctx))

		var out bytes.Buffer
		ok := run(ctx, &out, purge.WithPath(path))

		assert.True(t, ok)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "Запуск скрипта очистки базы данных задач...")
		assert.Contains(t, lines[1], "Найдено 3 задач в базе данных")
		assert.Contains(t, lines[2], "Удалено 3 задач. Осталось 0 задач.")
		assert.Contains(t, lines[3], "Очистка базы данных успешно завершена")
	})

	t.Run("should print the failure line for a missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backend", "db.sqlite3")

		var out bytes.Buffer
		ok := run(ctx, &out, purge.WithPath(path))

		assert.False(t, ok)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "Ошибка: файл базы данных не найден по пути "+path)
		assert.Contains(t, lines[2], "Очистка базы данных завершилась с ошибками")
	})
}
