package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogLevel aliases charmbracelet/log levels so callers need not import it.
type LogLevel = log.Level

const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// newLogger creates a logger writing timestamps as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
