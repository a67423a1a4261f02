// File: error_test.go
// Title: Core Error Tests
// Description: Unit tests for the structured Error type, code classification,
//              and severity derivation.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")
	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want CodeUnknown", err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want SeverityMedium", err.Severity())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected Severity
	}{
		{name: "syntax is low", code: CodeSyntaxEmpty, expected: SeverityLow},
		{name: "parameter is low", code: CodeParamOutOfRange, expected: SeverityLow},
		{name: "execution is high", code: CodeExecutionFailed, expected: SeverityHigh},
		{name: "batch halt is medium", code: CodeBatchHalted, expected: SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.expected {
				t.Errorf("severity = %v, want %v", err.Severity(), tt.expected)
			}
		})
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("value 150 above maximum 100").
		WithCode(CodeParamOutOfRange).
		WithDetail("value", 150).
		WithSuggestion("use a value between 0 and 100")

	wrapped := Wrap(inner, "template generation failed")

	if wrapped.Code() != CodeParamOutOfRange {
		t.Errorf("wrapped code = %v, want CodeParamOutOfRange", wrapped.Code())
	}
	if wrapped.Suggestion() != "use a value between 0 and 100" {
		t.Errorf("wrapped suggestion = %q", wrapped.Suggestion())
	}
	if v, ok := wrapped.Detail("value"); !ok || v != 150 {
		t.Errorf("wrapped detail = %v, %v", v, ok)
	}
	if !errors.Is(wrapped, wrapped) {
		t.Error("errors.Is should match self")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	stdErr := fmt.Errorf("host refused")
	wrapped := Wrap(stdErr, "execution failed")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("code = %v, want CodeUnknown", wrapped.Code())
	}
	if !errors.Is(wrapped, stdErr) {
		t.Error("wrapped error should unwrap to the standard error")
	}
	want := "execution failed: host refused"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestHasCode(t *testing.T) {
	inner := New("bad quotes").WithCode(CodeSyntaxUnbalancedQuotes)
	outer := Wrap(inner, "validation failed")

	if !HasCode(outer, CodeSyntaxUnbalancedQuotes) {
		t.Error("HasCode should find the inner code")
	}
	if HasCode(outer, CodeExecutionFailed) {
		t.Error("HasCode should not match an absent code")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeSyntaxIncompleteClause, "syntax"},
		{CodeParamInvalidColor, "parameter"},
		{CodeSafetyConfirmationRequired, "safety"},
		{CodeTemplateTypeMismatch, "template"},
		{CodeExecutionTimeout, "execution"},
		{CodeConfigInvalid, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("Category(%s) = %q, want %q", tt.code, got, tt.category)
		}
	}
}

func TestCodeIsRetryable(t *testing.T) {
	if !CodeExecutionFailed.IsRetryable() {
		t.Error("CodeExecutionFailed should be retryable")
	}
	if CodeSyntaxEmpty.IsRetryable() {
		t.Error("syntax errors are never retryable")
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Error("severity levels must be ordered Low < Medium < High < Critical")
	}
	if SeverityLow.RequiresConfirmation() {
		t.Error("low severity must not require confirmation")
	}
	if !SeverityCritical.RequiresConfirmation() {
		t.Error("critical severity must require confirmation")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("String(%d) = %q, want %q", tt.severity, got, tt.expected)
		}
	}
}
