package main

import (
	"context"
	"io"

	"github.com/lucasvillarinho/taskpurge"
	"github.com/lucasvillarinho/taskpurge/internal/log"
	"github.com/lucasvillarinho/taskpurge/purge"
)

func main() {
	// The process exits 0 on failure too, the outcome is in the output.
	run(context.Background(), nil)
}

func run(ctx context.Context, out io.Writer, opts ...purge.Option) bool {
	logger := log.NewLogger(out)
	logger.Info(ctx, "Запуск скрипта очистки базы данных задач...")

	opts = append([]purge.Option{purge.WithLogger(logger)}, opts...)
	if !taskpurge.NewPurger(opts...).Run(ctx) {
		logger.Error(ctx, "Очистка базы данных завершилась с ошибками")
		return false
	}

	logger.Success(ctx, "Очистка базы данных успешно завершена")
	return true
}
