package logger

import (
	"io"
	"os"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewStandardLogger("info")
)

// StandardLogger routes messages across a pair of writers the way a batch
// CLI expects: trace, debug, and info to stdout, warnings and errors to
// stderr.
type StandardLogger struct {
	out *ConsoleLogger
	err *ConsoleLogger
}

// NewStandardLogger creates a StandardLogger on the process standard streams
func NewStandardLogger(logLevel string) *StandardLogger {
	return NewSplitLogger(os.Stdout, os.Stderr, logLevel)
}

// NewSplitLogger creates a StandardLogger on explicit writers. Commands use
// this to keep their output capturable in tests.
func NewSplitLogger(out, err io.Writer, logLevel string) *StandardLogger {
	return &StandardLogger{
		out: NewConsoleLogger(out, logLevel),
		err: NewConsoleLogger(err, logLevel),
	}
}

// LogTrace logs a trace-level message to the stdout side
func (sl *StandardLogger) LogTrace(message string) {
	sl.out.LogTrace(message)
}

// LogDebug logs a debug-level message to the stdout side
func (sl *StandardLogger) LogDebug(message string) {
	sl.out.LogDebug(message)
}

// LogInfo logs an info-level message to the stdout side
func (sl *StandardLogger) LogInfo(message string) {
	sl.out.LogInfo(message)
}

// LogWarn logs a warning-level message to the stderr side
func (sl *StandardLogger) LogWarn(message string) {
	sl.err.LogWarn(message)
}

// LogError logs an error-level message to the stderr side
func (sl *StandardLogger) LogError(message string) {
	sl.err.LogError(message)
}

// LogProgress logs a progress bar line to the stdout side
func (sl *StandardLogger) LogProgress(completed, total int) {
	sl.out.LogProgress(completed, total)
}

// Default returns the process-wide logger. Library packages without a
// writer of their own log through it.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Commands rebind it once the
// configured log level is known. A nil logger is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
