// File: codes.go
// Title: Error Code Definitions
// Description: Defines the closed set of error codes used across the command
//              pipeline. Codes group into syntax, parameter, safety, template,
//              execution, and configuration families so callers can branch on
//              the failure class without parsing messages.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Syntax validation (command never executed)
	CodeSyntaxEmpty            Code = "SYNTAX_EMPTY"
	CodeSyntaxUnbalancedQuotes Code = "SYNTAX_UNBALANCED_QUOTES"
	CodeSyntaxUnbalancedParens Code = "SYNTAX_UNBALANCED_PARENS"
	CodeSyntaxControlCharacter Code = "SYNTAX_CONTROL_CHARACTER"
	CodeSyntaxIncompleteClause Code = "SYNTAX_INCOMPLETE_CLAUSE"

	// Parameter validation
	CodeParamOutOfRange       Code = "PARAM_OUT_OF_RANGE"
	CodeParamNotNumeric       Code = "PARAM_NOT_NUMERIC"
	CodeParamInvalidReference Code = "PARAM_INVALID_REFERENCE"
	CodeParamInvalidColor     Code = "PARAM_INVALID_COLOR"
	CodeParamRangeOrder       Code = "PARAM_RANGE_ORDER"

	// Safety classification
	CodeSafetyConfirmationRequired Code = "SAFETY_CONFIRMATION_REQUIRED"

	// Template generation
	CodeTemplateMissingParameter      Code = "TEMPLATE_MISSING_PARAMETER"
	CodeTemplateTypeMismatch          Code = "TEMPLATE_TYPE_MISMATCH"
	CodeTemplateUnresolvedPlaceholder Code = "TEMPLATE_UNRESOLVED_PLACEHOLDER"
	CodeTemplateUnknown               Code = "TEMPLATE_UNKNOWN"

	// Execution against the host runtime
	CodeExecutionFailed  Code = "EXECUTION_FAILED"
	CodeExecutionTimeout Code = "EXECUTION_TIMEOUT"
	CodeBatchHalted      Code = "BATCH_HALTED"

	// Configuration and grammar profiles
	CodeConfigMissing Code = "CONFIG_MISSING"
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeSyntaxEmpty, CodeSyntaxUnbalancedQuotes, CodeSyntaxUnbalancedParens,
		CodeSyntaxControlCharacter, CodeSyntaxIncompleteClause,
		CodeParamOutOfRange, CodeParamNotNumeric, CodeParamInvalidReference,
		CodeParamInvalidColor, CodeParamRangeOrder,
		CodeSafetyConfirmationRequired,
		CodeTemplateMissingParameter, CodeTemplateTypeMismatch,
		CodeTemplateUnresolvedPlaceholder, CodeTemplateUnknown,
		CodeExecutionFailed, CodeExecutionTimeout, CodeBatchHalted,
		CodeConfigMissing, CodeConfigInvalid:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntaxEmpty, CodeSyntaxUnbalancedQuotes, CodeSyntaxUnbalancedParens,
		CodeSyntaxControlCharacter, CodeSyntaxIncompleteClause:
		return "syntax"
	case CodeParamOutOfRange, CodeParamNotNumeric, CodeParamInvalidReference,
		CodeParamInvalidColor, CodeParamRangeOrder:
		return "parameter"
	case CodeSafetyConfirmationRequired:
		return "safety"
	case CodeTemplateMissingParameter, CodeTemplateTypeMismatch,
		CodeTemplateUnresolvedPlaceholder, CodeTemplateUnknown:
		return "template"
	case CodeExecutionFailed, CodeExecutionTimeout, CodeBatchHalted:
		return "execution"
	case CodeConfigMissing, CodeConfigInvalid:
		return "configuration"
	default:
		return "generic"
	}
}

// IsRetryable returns true when a failed operation carrying this code may
// legitimately be retried by the dispatcher. Only host execution failures
// qualify; validation failures are deterministic.
func (c Code) IsRetryable() bool {
	return c == CodeExecutionFailed
}
