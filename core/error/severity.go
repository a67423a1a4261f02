// File: severity.go
// Title: Error Severity Levels
// Description: Defines ordered severity levels shared by the error system and
//              the safety classifier. Severity drives confirmation gating in
//              the dispatcher and alerting decisions in callers.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error or a destructive command
type Severity int

const (
	// SeverityLow indicates a minor issue that does not threaten show data
	// Examples: a single-target update, invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an effect that is disruptive but recoverable
	// Examples: clearing the current selection, a blackout
	SeverityMedium

	// SeverityHigh indicates loss of a specific stored object
	// Examples: deleting a single cue or group
	SeverityHigh

	// SeverityCritical indicates potential loss of large parts of the show
	// Examples: delete all, clear all, formatting a target
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// RequiresConfirmation returns true if commands of this severity should be
// confirmed before execution when the dispatcher's safety gate is enabled
func (s Severity) RequiresConfirmation() bool {
	return s >= SeverityMedium
}

// GetSeverityFromCode determines an appropriate severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical: the host refused or broke mid-flight
	case CodeExecutionFailed, CodeExecutionTimeout:
		return SeverityHigh

	// Medium: pipeline misconfiguration or halted batches
	case CodeBatchHalted, CodeConfigInvalid, CodeConfigMissing:
		return SeverityMedium

	// Low: everything the user can fix by retyping the command
	case CodeSyntaxEmpty, CodeSyntaxUnbalancedQuotes, CodeSyntaxUnbalancedParens,
		CodeSyntaxControlCharacter, CodeSyntaxIncompleteClause,
		CodeParamOutOfRange, CodeParamNotNumeric, CodeParamInvalidReference,
		CodeParamInvalidColor, CodeParamRangeOrder,
		CodeTemplateMissingParameter, CodeTemplateTypeMismatch,
		CodeTemplateUnresolvedPlaceholder, CodeTemplateUnknown:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
