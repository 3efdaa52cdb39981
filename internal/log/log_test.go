package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("should write one line per message", func(t *testing.T) {
		var out bytes.Buffer
		lg := NewLogger(&out)

		lg.Info(ctx, "Найдено 3 задач в базе данных")
		lg.Success(ctx, "Очистка базы данных успешно завершена")
		lg.Error(ctx, "Ошибка при работе с базой данных: no such table: tasks")

		assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")), "Expected three lines")
		assert.Contains(t, out.String(), "Найдено 3 задач в базе данных")
		assert.Contains(t, out.String(), "Очистка базы данных успешно завершена")
		assert.Contains(t, out.String(), "Ошибка при работе с базой данных: no such table: tasks")
	})

	t.Run("should write info lines without color codes", func(t *testing.T) {
		var out bytes.Buffer
		lg := NewLogger(&out)

		lg.Info(ctx, "Запуск скрипта очистки базы данных задач...")

		assert.Equal(t, "Запуск скрипта очистки базы данных задач...\n", out.String())
	})

	t.Run("should color error lines when color is enabled", func(t *testing.T) {
		previous := color.NoColor
		color.NoColor = false
		defer func() { color.NoColor = previous }()

		var out bytes.Buffer
		lg := NewLogger(&out)

		lg.Error(ctx, "boom")

		assert.Contains(t, out.String(), "\x1b[31m", "Expected the red escape sequence")
		assert.Contains(t, out.String(), "boom")
	})

	t.Run("should default to stdout", func(t *testing.T) {
		lg := NewLogger(nil).(*logger)

		assert.Equal(t, color.Output, lg.out)
	})
}
