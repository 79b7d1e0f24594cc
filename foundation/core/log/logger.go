// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that writes structured log entries
//              with contextual fields to an injected output, and reports
//              structured errors with their code and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Synchronous only, no package-level default logger;
//                      the sink is always passed in by the caller

package log

import (
	"io"
	"os"
	"sync"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// WithField returns a copy of the logger that adds a field to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithCorrelationID returns a copy of the logger tagged with a run ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// CorrelationID returns the run ID attached to this logger
func (l *Logger) CorrelationID() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.correlationID
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// LogError reports err as a single line. The message is the error text; a
// structured error contributes its code, severity and details as fields. Low severity
// errors are still logged at error level because they end the run.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	fvErr, ok := fverror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     fvErr.Code().String(),
		"error_severity": fvErr.Severity().String(),
	}
	if op := fvErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range fvErr.Details() {
		fields["error_"+k] = v
	}

	l.log(LevelError, err.Error(), err, fields)
}

// StartTimer creates and starts a new timer for an operation
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	l.write(formatter, output, entry)
}

// write formats and writes a single entry
func (l *Logger) write(formatter Formatter, output io.Writer, entry *Entry) {
	formatted, err := formatter.Format(entry)
	if err != nil {
		return
	}
	_, _ = output.Write(formatted)
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		correlationID: l.correlationID,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}
