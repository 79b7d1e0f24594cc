// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs it on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"time"
)

// Timer measures the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time at debug level. A second
// call returns zero and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		fields := t.fields.Merge(Fields{
			"operation":   t.operation,
			"duration_ms": float64(elapsed.Nanoseconds()) / 1000000,
		})
		t.logger.Debug(t.operation+" completed", fields)
	}
	return elapsed
}
