// Package log provides structured logging for fvcalc.
//
// Package: log
// Title: Structured Logging
// Description: A Logger writes one line per entry (text or JSON) carrying a
//              timestamp, a level, a message, an optional run correlation ID
//              and custom fields. The output is always supplied by the caller,
//              there is no package-level logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Output: os.Stderr,
//	}).WithCorrelationID(runID)
//
//	logger.Info("arguments entered", log.Fields{"pv": "1000.00"})
//	logger.LogError(err)
package log
