// File: safety.go
// Title: Destructive Command Classifier
// Description: Classifies commands whose effect is destructive by matching
//              the leading verb phrase against the profile's destructive
//              action table. The table is ordered most-specific first and
//              the first match wins. Classification gates confirmation in
//              the dispatcher; it never blocks execution outright.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package safety

import (
	"strings"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
)

// Classification is the outcome of classifying one command
type Classification struct {
	// Destructive reports whether the command matched the table
	Destructive bool

	// Reason is the human-readable explanation from the matched row
	Reason string

	// Severity of the destructive effect; meaningful only when Destructive
	Severity cmderror.Severity

	// Phrase is the matched table phrase, for diagnostics
	Phrase string
}

// Classifier matches commands against a destructive action table
type Classifier struct {
	profile *config.GrammarProfile
}

// New creates a classifier for the given profile. A nil profile uses the
// built-in defaults.
func New(profile *config.GrammarProfile) *Classifier {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Classifier{profile: profile}
}

// Classify checks the command's leading verb phrase against the table.
// Matching is case-insensitive and side-effect free.
func (c *Classifier) Classify(command string) Classification {
	normalized := strings.ToLower(strings.TrimSpace(command))
	if normalized == "" {
		return Classification{}
	}

	for _, action := range c.profile.DestructiveActions {
		phrase := strings.ToLower(action.Phrase)

		switch action.Match {
		case config.MatchExact:
			if normalized == phrase {
				return matched(action)
			}
		case config.MatchPrefix:
			// A prefix row needs a target after the phrase
			if strings.HasPrefix(normalized, phrase+" ") && strings.TrimSpace(normalized[len(phrase):]) != "" {
				return matched(action)
			}
		}
	}

	return Classification{}
}

// matched builds a Classification from a table row
func matched(action config.DestructiveAction) Classification {
	return Classification{
		Destructive: true,
		Reason:      action.Reason,
		Severity:    config.SeverityFromName(action.Severity),
		Phrase:      action.Phrase,
	}
}
