package log

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Level string

const (
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "SUCCESS"
	LevelError   Level = "ERROR"
)

type Logger interface {
	Info(ctx context.Context, msg string)
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

type logger struct {
	out    io.Writer
	colors map[Level]*color.Color
}

// NewLogger creates a console logger writing one line per message.
// Success lines are green and error lines red when the output supports color.
//
// Parameters:
//   - out: the writer, color.Output (stdout) when nil
//
// Returns:
//   - Logger: the logger instance
//
// Example:
//
//	logger := log.NewLogger(nil)
//	logger.Error(ctx, "an error occurred")
func NewLogger(out io.Writer) Logger {
	if out == nil {
		out = color.Output
	}

	return &logger{
		out: out,
		colors: map[Level]*color.Color{
			LevelSuccess: color.New(color.FgGreen),
			LevelError:   color.New(color.FgRed),
		},
	}
}

// Info logs a status message.
func (lg *logger) Info(ctx context.Context, msg string) {
	lg.write(ctx, LevelInfo, msg)
}

// Success logs the message reporting a completed operation.
func (lg *logger) Success(ctx context.Context, msg string) {
	lg.write(ctx, LevelSuccess, msg)
}

// Error logs an error message.
//
// Parameters:
//   - ctx: the context
//   - msg: the error message
//
// Example:
//
//	logger.Error(ctx, "an error occurred")
func (lg *logger) Error(ctx context.Context, msg string) {
	lg.write(ctx, LevelError, msg)
}

func (lg *logger) write(_ context.Context, level Level, msg string) {
	c, ok := lg.colors[level]
	if !ok {
		_, _ = fmt.Fprintln(lg.out, msg)
		return
	}

	_, _ = c.Fprintln(lg.out, msg)
}
