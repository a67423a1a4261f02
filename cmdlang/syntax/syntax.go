// File: syntax.go
// Title: Command Syntax Validator
// Description: Checks a raw command string for structural well-formedness
//              before any semantic interpretation: balanced quoting and
//              parenthesization, absence of control characters, and complete
//              trailing clauses. Produces warnings for stylistic issues that
//              do not invalidate the command.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/utils/stringx"
)

// ValidationResult is the outcome of a validation stage. It is never mutated
// after being returned.
type ValidationResult struct {
	Valid       bool
	Err         *cmderror.Error
	Warnings    []string
	Suggestions []string
}

// ok returns a passing result carrying any accumulated warnings
func ok(warnings, suggestions []string) ValidationResult {
	return ValidationResult{Valid: true, Warnings: warnings, Suggestions: suggestions}
}

// fail returns a failing result
func fail(err *cmderror.Error, suggestions ...string) ValidationResult {
	return ValidationResult{Valid: false, Err: err, Suggestions: suggestions}
}

// Validator performs structural validation of command strings against a
// grammar profile. It holds no mutable state and is safe for reuse.
type Validator struct {
	profile *config.GrammarProfile
}

// New creates a syntax validator for the given profile. A nil profile uses
// the built-in defaults.
func New(profile *config.GrammarProfile) *Validator {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Validator{profile: profile}
}

// Validate checks the structural well-formedness of a command string.
// It is a pure function of its input.
func (v *Validator) Validate(command string) ValidationResult {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return fail(cmderror.New("command is empty").
			WithCode(cmderror.CodeSyntaxEmpty).
			WithOperation("syntax.Validate"),
			"enter a command, for example: Fixture 1 At 50")
	}

	if r, found := firstControlRune(command); found {
		return fail(cmderror.Newf("command contains control character U+%04X", r).
			WithCode(cmderror.CodeSyntaxControlCharacter).
			WithOperation("syntax.Validate"),
			"remove non-printable characters from the command")
	}

	if strings.Count(command, `"`)%2 != 0 {
		return fail(cmderror.New("unbalanced quotes in command").
			WithCode(cmderror.CodeSyntaxUnbalancedQuotes).
			WithOperation("syntax.Validate").
			WithDetail("command", trimmed),
			"close the open double quote")
	}

	if err := checkParentheses(command); err != nil {
		return fail(err, "balance opening and closing parentheses")
	}

	if err, suggestion := v.checkDanglingClause(trimmed); err != nil {
		return fail(err, suggestion)
	}

	warnings, suggestions := v.collectWarnings(trimmed)
	return ok(warnings, suggestions)
}

// firstControlRune returns the first non-printable rune, if any. Plain
// spaces are allowed; tabs and newlines are not part of the grammar.
func firstControlRune(s string) (rune, bool) {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return r, true
		}
	}
	return 0, false
}

// checkParentheses runs an open/close counter over the string. Going
// negative at any point or ending non-zero is an error.
func checkParentheses(s string) *cmderror.Error {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return cmderror.Newf("closing parenthesis at position %d has no opener", i).
					WithCode(cmderror.CodeSyntaxUnbalancedParens).
					WithOperation("syntax.Validate")
			}
		}
	}
	if depth != 0 {
		return cmderror.Newf("%d unclosed parenthesis(es)", depth).
			WithCode(cmderror.CodeSyntaxUnbalancedParens).
			WithOperation("syntax.Validate")
	}
	return nil
}

// checkDanglingClause detects a property or range keyword left hanging at
// the end of the command with no following value.
func (v *Validator) checkDanglingClause(trimmed string) (*cmderror.Error, string) {
	tokens := stringx.Fields(trimmed)
	if len(tokens) == 0 {
		return nil, ""
	}
	last := tokens[len(tokens)-1]

	if strings.EqualFold(last, v.profile.RangeKeyword) {
		return cmderror.Newf("range keyword %q needs a following value", v.profile.RangeKeyword).
				WithCode(cmderror.CodeSyntaxIncompleteClause).
				WithOperation("syntax.Validate").
				WithDetail("keyword", last),
			fmt.Sprintf("complete the range, for example: 1 %s 10", v.profile.RangeKeyword)
	}

	if v.profile.IsPropertyKeyword(last) {
		canonical := v.profile.CanonicalKeyword(last)
		return cmderror.Newf("property keyword %q needs a following value", canonical).
				WithCode(cmderror.CodeSyntaxIncompleteClause).
				WithOperation("syntax.Validate").
				WithDetail("keyword", canonical),
			fmt.Sprintf("provide a value after %q", canonical)
	}

	return nil, ""
}

// collectWarnings gathers non-fatal diagnostics: excessive decimal precision
// on values following a property keyword, and keywords typed in the wrong
// case.
func (v *Validator) collectWarnings(trimmed string) ([]string, []string) {
	var warnings, suggestions []string
	tokens := stringx.Fields(trimmed)

	for i, tok := range tokens {
		// Keyword case check
		canonical := v.profile.CanonicalKeyword(tok)
		if canonical != tok && (v.profile.IsPropertyKeyword(tok) || strings.EqualFold(tok, v.profile.RangeKeyword)) {
			warnings = append(warnings, fmt.Sprintf("keyword %q should be written %q", tok, canonical))
			suggestions = append(suggestions, fmt.Sprintf("use %q instead of %q", canonical, tok))
		}

		// Precision check only applies to the value after a property keyword
		if i == 0 || !v.profile.IsPropertyKeyword(tokens[i-1]) {
			continue
		}
		if _, err := strconv.ParseFloat(tok, 64); err != nil {
			continue
		}
		if dot := strings.IndexByte(tok, '.'); dot >= 0 && len(tok)-dot-1 > 3 {
			warnings = append(warnings, fmt.Sprintf("value %q has more than 3 decimal places", tok))
		}
	}

	return warnings, suggestions
}
