// Package logger provides the colour-tagged component loggers used across
// the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-world/config"
)

// Logger writes leveled, colour-tagged lines prefixed with a component name.
// It is safe for concurrent use.
type Logger struct {
	l *log.Logger
}

// New creates a Logger writing to w. Each line starts with the coloured
// prefix, e.g. "[GAME-SERVICE]".
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	p := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{l: log.New(w, p, log.LstdFlags)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.l.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string) {
	l.l.Printf("%s[WARN]%s %s", config.LogWarnColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.l.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
