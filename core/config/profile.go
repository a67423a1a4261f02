// File: profile.go
// Title: Grammar Profile Definitions
// Description: Defines the configurable grammar tables of the command
//              language: property keywords, range/combine operators, the
//              destructive action table, named colors, and numeric ranges
//              per parameter kind. The exact keyword set is host-version
//              dependent, so it ships as data with built-in defaults rather
//              than hard-coded logic.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package config

import (
	"strings"

	cmderror "github.com/beamctl/beamctl/core/error"
)

// MatchKind describes how a destructive action phrase matches a command
type MatchKind string

const (
	// MatchExact matches when the whole command equals the phrase
	MatchExact MatchKind = "exact"

	// MatchPrefix matches when the command starts with the phrase followed
	// by at least one more token (the target)
	MatchPrefix MatchKind = "prefix"
)

// DestructiveAction is one row of the destructive verb table
type DestructiveAction struct {
	Phrase   string    `toml:"phrase" yaml:"phrase"`
	Match    MatchKind `toml:"match" yaml:"match"`
	Severity string    `toml:"severity" yaml:"severity"`
	Reason   string    `toml:"reason" yaml:"reason"`
}

// NumericRange bounds a numeric parameter kind
type NumericRange struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// Contains reports whether v lies within the inclusive range
func (r NumericRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// GrammarProfile holds all configurable grammar tables
type GrammarProfile struct {
	// PropertyKeywords in canonical capitalization, in the fixed clause
	// order the builder emits them
	PropertyKeywords []string `toml:"property_keywords" yaml:"property_keywords"`

	// RangeKeyword denotes an inclusive numeric range ("1 Thru 10")
	RangeKeyword string `toml:"range_keyword" yaml:"range_keyword"`

	// CombineOperator joins multi-selections ("1 + 2 + 3")
	CombineOperator string `toml:"combine_operator" yaml:"combine_operator"`

	// NamedColors accepted by the color validator, case-insensitive
	NamedColors []string `toml:"named_colors" yaml:"named_colors"`

	// DestructiveActions ordered most-specific first; first match wins
	DestructiveActions []DestructiveAction `toml:"destructive_actions" yaml:"destructive_actions"`

	// Ranges per parameter kind, keyed by lower-case kind name
	Ranges map[string]NumericRange `toml:"ranges" yaml:"ranges"`
}

// DefaultProfile returns the built-in grammar profile. The tables mirror the
// documented console grammar and work without any configuration file.
func DefaultProfile() *GrammarProfile {
	return &GrammarProfile{
		PropertyKeywords: []string{
			"At", "Color", "Position", "Gobo", "Zoom",
			"Focus", "Iris", "Fade", "Delay", "Time",
		},
		RangeKeyword:    "Thru",
		CombineOperator: "+",
		NamedColors: []string{
			"Red", "Green", "Blue", "White", "Black", "Yellow",
			"Cyan", "Magenta", "Orange", "Purple", "Pink", "Amber",
			"Warm White", "Cold White",
		},
		DestructiveActions: []DestructiveAction{
			{Phrase: "delete all", Match: MatchExact, Severity: "critical", Reason: "removes every object of the addressed type"},
			{Phrase: "clear all", Match: MatchExact, Severity: "critical", Reason: "clears all programmer content"},
			{Phrase: "format", Match: MatchPrefix, Severity: "critical", Reason: "irreversibly formats the target"},
			{Phrase: "delete", Match: MatchPrefix, Severity: "high", Reason: "removes the addressed object"},
			{Phrase: "clear selection", Match: MatchExact, Severity: "medium", Reason: "discards the current selection"},
			{Phrase: "clear", Match: MatchExact, Severity: "medium", Reason: "discards programmer content"},
			{Phrase: "off all", Match: MatchExact, Severity: "medium", Reason: "turns off all running playbacks"},
			{Phrase: "blackout", Match: MatchExact, Severity: "medium", Reason: "drops all output to zero"},
			{Phrase: "update", Match: MatchPrefix, Severity: "low", Reason: "overwrites the stored target with programmer content"},
		},
		Ranges: map[string]NumericRange{
			"intensity": {Min: 0, Max: 100},
			"pan":       {Min: -270, Max: 270},
			"tilt":      {Min: -135, Max: 135},
			"time":      {Min: 0, Max: 3600},
			"dmx":       {Min: 0, Max: 255},
			"cue":       {Min: 0, Max: 9999},
		},
	}
}

// Validate checks the profile for internal consistency
func (p *GrammarProfile) Validate() error {
	if len(p.PropertyKeywords) == 0 {
		return cmderror.New("grammar profile requires at least one property keyword").
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Profile.Validate")
	}
	if strings.TrimSpace(p.RangeKeyword) == "" {
		return cmderror.New("grammar profile requires a range keyword").
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Profile.Validate")
	}
	if strings.TrimSpace(p.CombineOperator) == "" {
		return cmderror.New("grammar profile requires a combine operator").
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Profile.Validate")
	}
	for name, r := range p.Ranges {
		if r.Min > r.Max {
			return cmderror.Newf("range %q has min %v above max %v", name, r.Min, r.Max).
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Profile.Validate")
		}
	}
	for _, a := range p.DestructiveActions {
		if strings.TrimSpace(a.Phrase) == "" {
			return cmderror.New("destructive action with empty phrase").
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Profile.Validate")
		}
		switch a.Match {
		case MatchExact, MatchPrefix:
		default:
			return cmderror.Newf("destructive action %q has unknown match kind %q", a.Phrase, a.Match).
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Profile.Validate")
		}
		switch strings.ToLower(a.Severity) {
		case "low", "medium", "high", "critical":
		default:
			return cmderror.Newf("destructive action %q has unknown severity %q", a.Phrase, a.Severity).
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Profile.Validate")
		}
	}
	return nil
}

// Range returns the numeric range for a kind name, with ok=false when the
// profile does not define it
func (p *GrammarProfile) Range(kind string) (NumericRange, bool) {
	r, ok := p.Ranges[strings.ToLower(kind)]
	return r, ok
}

// IsPropertyKeyword reports whether word matches a property keyword,
// case-insensitively
func (p *GrammarProfile) IsPropertyKeyword(word string) bool {
	for _, kw := range p.PropertyKeywords {
		if strings.EqualFold(kw, word) {
			return true
		}
	}
	return false
}

// CanonicalKeyword returns the canonical capitalization for a keyword, or
// the input unchanged when it is not a known keyword
func (p *GrammarProfile) CanonicalKeyword(word string) string {
	for _, kw := range p.PropertyKeywords {
		if strings.EqualFold(kw, word) {
			return kw
		}
	}
	if strings.EqualFold(p.RangeKeyword, word) {
		return p.RangeKeyword
	}
	return word
}

// SeverityFromName converts a profile severity string to the error package
// severity. Unknown names map to medium.
func SeverityFromName(name string) cmderror.Severity {
	switch strings.ToLower(name) {
	case "low":
		return cmderror.SeverityLow
	case "medium":
		return cmderror.SeverityMedium
	case "high":
		return cmderror.SeverityHigh
	case "critical":
		return cmderror.SeverityCritical
	default:
		return cmderror.SeverityMedium
	}
}
