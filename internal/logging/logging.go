// Package logging provides the diagnostic logger. Output goes to stderr so
// it never mixes with task listings on stdout.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures the diagnostic logger
type Options struct {
	Level     string
	Format    string
	Output    io.Writer
	Timestamp bool
}

var (
	mu     sync.Mutex
	logger = newLogger(Options{Level: "warn"})
)

// DebugEnabled returns true if debug mode is enabled via ARGUS_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("ARGUS_DEBUG") != ""
}

// Configure replaces the package logger. ARGUS_DEBUG forces the debug level.
func Configure(opts Options) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(opts)
	return logger
}

// Logger returns the package logger
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func newLogger(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(opts.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.Timestamp,
		Prefix:          "argus",
	})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	Logger().Debugf(format, args...)
}

// Debugln logs a debug message built from args
func Debugln(args ...interface{}) {
	if len(args) == 0 {
		return
	}
	Logger().Debug(args[0], args[1:]...)
}

// Warn logs a warning with key/value pairs
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

// Error logs an error with key/value pairs
func Error(msg interface{}, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}
