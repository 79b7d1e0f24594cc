// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level a failure is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Code mapping narrowed to calculator codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround
	SeverityMedium

	// SeverityHigh indicates an error that prevents the program from running
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the program
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeArgumentCount:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
