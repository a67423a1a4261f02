// File: syntax_test.go
// Title: Syntax Validator Tests
// Description: Unit tests for structural command validation: empty input,
//              quoting, parentheses, control characters, dangling clauses,
//              and non-fatal warnings.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package syntax

import (
	"strings"
	"testing"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
)

func TestValidate_Failures(t *testing.T) {
	v := New(nil)

	tests := []struct {
		name    string
		command string
		code    cmderror.Code
	}{
		{name: "empty string", command: "", code: cmderror.CodeSyntaxEmpty},
		{name: "whitespace only", command: "   ", code: cmderror.CodeSyntaxEmpty},
		{name: "unbalanced quotes", command: `Fixture 1 At "50`, code: cmderror.CodeSyntaxUnbalancedQuotes},
		{name: "single quote char", command: `Select "My Group`, code: cmderror.CodeSyntaxUnbalancedQuotes},
		{name: "closing paren without opener", command: "Fixture 1) At 50", code: cmderror.CodeSyntaxUnbalancedParens},
		{name: "unclosed paren", command: "Select (Fixture 1", code: cmderror.CodeSyntaxUnbalancedParens},
		{name: "control character", command: "Fixture 1\x07 At 50", code: cmderror.CodeSyntaxControlCharacter},
		{name: "tab character", command: "Fixture 1\tAt 50", code: cmderror.CodeSyntaxControlCharacter},
		{name: "dangling At", command: "Fixture 1 At", code: cmderror.CodeSyntaxIncompleteClause},
		{name: "dangling At with trailing space", command: "Fixture 1 At   ", code: cmderror.CodeSyntaxIncompleteClause},
		{name: "dangling Color", command: "Fixture 1 Color", code: cmderror.CodeSyntaxIncompleteClause},
		{name: "dangling Thru", command: "Fixture 1 Thru", code: cmderror.CodeSyntaxIncompleteClause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.command)
			if result.Valid {
				t.Fatalf("Validate(%q) should fail", tt.command)
			}
			if result.Err == nil {
				t.Fatal("failing result must carry an error")
			}
			if result.Err.Code() != tt.code {
				t.Errorf("code = %v, want %v", result.Err.Code(), tt.code)
			}
		})
	}
}

func TestValidate_Success(t *testing.T) {
	v := New(nil)

	tests := []string{
		"Fixture 1 At 50",
		"Select Fixture 1 Thru 10",
		`Select Group "My Group"`,
		"Store Cue 1 Fade 3",
		"Fixture 1 At 50 Color Red Fade 2.5",
		"Group (1 + 2) At 75",
	}

	for _, command := range tests {
		t.Run(command, func(t *testing.T) {
			result := v.Validate(command)
			if !result.Valid {
				t.Fatalf("Validate(%q) failed: %v", command, result.Err)
			}
			if len(result.Warnings) != 0 {
				t.Errorf("unexpected warnings: %v", result.Warnings)
			}
		})
	}
}

func TestValidate_PrecisionWarning(t *testing.T) {
	v := New(nil)

	result := v.Validate("Fixture 1 At 50.12345")
	if !result.Valid {
		t.Fatalf("excessive precision must not invalidate: %v", result.Err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "decimal places") {
		t.Errorf("warning = %q", result.Warnings[0])
	}

	// Three decimals are fine
	result = v.Validate("Fixture 1 At 50.123")
	if len(result.Warnings) != 0 {
		t.Errorf("three decimals should not warn: %v", result.Warnings)
	}
}

func TestValidate_LowercaseKeywordWarning(t *testing.T) {
	v := New(nil)

	result := v.Validate("Fixture 1 at 50")
	if !result.Valid {
		t.Fatalf("lowercase keyword must not invalidate: %v", result.Err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], `"At"`) {
		t.Errorf("warning should name the canonical form: %q", result.Warnings[0])
	}
	if len(result.Suggestions) == 0 {
		t.Error("lowercase keyword should produce a suggestion")
	}
}

func TestValidate_PrecisionOnlyAfterPropertyKeyword(t *testing.T) {
	v := New(nil)

	// 1.23456 here is a selector, not a property value
	result := v.Validate("Fixture 1.23456 Color Red")
	if len(result.Warnings) != 0 {
		t.Errorf("precision warning should only apply after property keywords: %v", result.Warnings)
	}
}

func TestValidate_CustomProfile(t *testing.T) {
	profile := config.DefaultProfile()
	profile.PropertyKeywords = []string{"Level"}
	profile.RangeKeyword = "To"
	v := New(profile)

	result := v.Validate("Fixture 1 Level")
	if result.Valid {
		t.Fatal("dangling custom keyword should fail")
	}
	if result.Err.Code() != cmderror.CodeSyntaxIncompleteClause {
		t.Errorf("code = %v", result.Err.Code())
	}

	// "At" is not a keyword in this profile, so dangling "At" passes
	result = v.Validate("Fixture 1 At")
	if !result.Valid {
		t.Errorf("non-keyword token at end should pass: %v", result.Err)
	}
}

func TestValidate_Pure(t *testing.T) {
	v := New(nil)
	command := "Fixture 1 at 50.12345"

	first := v.Validate(command)
	second := v.Validate(command)

	if first.Valid != second.Valid || len(first.Warnings) != len(second.Warnings) {
		t.Error("repeated validation of the same input must agree")
	}
}
