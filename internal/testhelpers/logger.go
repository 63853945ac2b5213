package testhelpers

import (
	"github.com/myrjola/mealmotion/internal/logging"
	"io"
	"log/slog"
)

// NewLogger creates a debug level logger with the given log sink such as [NewWriter].
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.NewLogger(logSink, slog.LevelDebug)
}
