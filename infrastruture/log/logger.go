// Package log provides the colored, prefixed loggers used by every component.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrNilWriter = errors.New("log: writer is nil")

// Logger writes "[PREFIX] [LEVEL] message" lines, the prefix drawn in color.
type Logger struct {
	entry *logrus.Logger
}

var _ i.Logger = &Logger{}

// New creates a logger writing to w. An empty color disables coloring.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: l}, nil
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// SetQuiet drops everything below error level.
func (l *Logger) SetQuiet(quiet bool) {
	if quiet {
		l.entry.SetLevel(logrus.ErrorLevel)
	} else {
		l.entry.SetLevel(logrus.DebugLevel)
	}
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}

	fmt.Fprintf(&b, "%s [%s] %s\n", e.Time.Format("2006/01/02 15:04:05"), levelName(e.Level), e.Message)
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(l.String())
}
