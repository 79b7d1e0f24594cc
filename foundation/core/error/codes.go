// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of a
//              calculation run.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Narrowed to calculator codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Input
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeArgumentCount Code = "ARGUMENT_COUNT"

	// Configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeArgumentCount,
		CodeInvalidConfig, CodeMissingConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeArgumentCount:
		return "input"
	case CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	default:
		return "generic"
	}
}
