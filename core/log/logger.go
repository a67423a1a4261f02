// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured Logger used throughout beamctl.
//              Provides leveled logging with contextual fields and pluggable
//              formatters. The dispatcher uses it as the diagnostic sink for
//              execution attempts, warnings, and failures.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields added to all entries from this logger
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level     Level
	Formatter Formatter
	Output    io.Writer
	Name      string
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	if config.Formatter != nil {
		logger.formatter = config.Formatter
	}
	if config.Output != nil {
		logger.output = config.Output
	}
	logger.name = config.Name
	return logger
}

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// WithField returns a child logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a child logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	child := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: merged(l.contextFields, []Fields{fields}),
	}
	return child
}

// SetLevel changes the minimum level this logger emits
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output = w
}

// SetFormatter changes the entry formatter
func (l *Logger) SetFormatter(f Formatter) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.formatter = f
}

// Level returns the current minimum level
func (l *Logger) Level() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields)
}

// log formats and writes a single entry if the level passes the filter
func (l *Logger) log(level Level, message string, fields []Fields) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if level < l.level {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Fields:    merged(l.contextFields, fields),
	}

	out, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	// Write errors are swallowed: the sink is defined as non-failing
	l.output.Write(out)
}
