// ============================================================================
// fvcalc - Simple Interest Future Value Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating run-scoped loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	fverror "github.com/msto63/fvcalc/foundation/core/error"
	fvlog "github.com/msto63/fvcalc/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "text" or "json" (default: text)

	// Destination; stderr when nil
	Output io.Writer

	// Correlation ID; a fresh run ID is generated when empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// NewLogger creates a logger tagged with a run ID. Unknown levels or formats
// are reported as INVALID_CONFIG.
func NewLogger(cfg LoggerConfig) (*fvlog.Logger, error) {
	level, err := fvlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fverror.Wrap(err, "invalid logger configuration").
			WithCode(fverror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("level", cfg.Level)
	}

	format, err := fvlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fverror.Wrap(err, "invalid logger configuration").
			WithCode(fverror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("format", cfg.Format)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	logger := fvlog.NewWithConfig(fvlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	return logger.WithCorrelationID(runID), nil
}

// NewBootstrapLogger creates a text logger at info level for failures that
// happen before the configured logger exists.
func NewBootstrapLogger(serviceName string, output io.Writer) *fvlog.Logger {
	cfg := DefaultLoggerConfig(serviceName)
	cfg.Output = output

	logger, err := NewLogger(cfg)
	if err != nil {
		// defaults always parse
		panic(err)
	}
	return logger
}

// NewRunID returns a random identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}
