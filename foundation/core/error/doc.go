// Package error provides the structured error type used by fvcalc.
//
// Package: error
// Title: Structured Error Handling
// Description: An Error carries a message, an optional cause, a Code that
//              classifies the failure, a Severity and a set of details. The
//              log package reads code and details when it reports a failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	err := error.New("invalid r (interest rate): must be between 0 and 1").
//		WithCode(error.CodeInvalidInput).
//		WithDetail("parameter", "r").
//		WithDetail("value", "1.01")
//
//	if error.HasCode(err, error.CodeInvalidInput) {
//		// reject and inform
//	}
package error
