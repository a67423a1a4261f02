// File: builder.go
// Title: Command String Builder
// Description: Composes structured command specifications into command
//              strings with deterministic clause ordering. The builder never
//              validates; inputs are assumed to have passed the syntax and
//              parameter validators where applicable, so programmatically
//              generated specs skip redundant re-validation.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beamctl/beamctl/core/config"
)

// Builder renders command specifications using the profile's range keyword
// and combine operator
type Builder struct {
	profile *config.GrammarProfile
}

// New creates a builder. A nil profile uses the built-in defaults.
func New(profile *config.GrammarProfile) *Builder {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Builder{profile: profile}
}

// Build renders a specification into a command string
func (b *Builder) Build(spec Spec) string {
	switch s := spec.(type) {
	case SelectionSpec:
		return b.buildSelection(s)
	case PropertySpec:
		return b.buildProperty(s)
	case StorageSpec:
		return buildStorage(s)
	case PlaybackSpec:
		return strings.TrimSpace(s.Action + " " + s.Target)
	case CustomSpec:
		return s.Raw
	default:
		return ""
	}
}

// BuildAll renders a sequence of specifications in order
func (b *Builder) BuildAll(specs []Spec) []string {
	commands := make([]string, 0, len(specs))
	for _, spec := range specs {
		commands = append(commands, b.Build(spec))
	}
	return commands
}

// buildSelection renders "Select <objectType> <selector>"
func (b *Builder) buildSelection(s SelectionSpec) string {
	return fmt.Sprintf("Select %s %s", s.ObjectType, b.renderSelector(s.Selector))
}

// renderSelector formats the selector per its shape
func (b *Builder) renderSelector(sel Selector) string {
	joiner := " " + b.profile.CombineOperator + " "

	switch sel.Shape {
	case SelectIndex:
		return strconv.Itoa(sel.Index)
	case SelectRange:
		return b.renderRange(sel.Start, sel.End)
	case SelectList:
		parts := make([]string, len(sel.List))
		for i, n := range sel.List {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, joiner)
	case SelectRangeList:
		parts := make([]string, len(sel.Ranges))
		for i, pair := range sel.Ranges {
			parts[i] = b.renderRange(pair[0], pair[1])
		}
		return strings.Join(parts, joiner)
	case SelectName:
		return strconv.Quote(sel.Name)
	default:
		return ""
	}
}

// renderRange formats "a Thru b"
func (b *Builder) renderRange(start, end int) string {
	return fmt.Sprintf("%d %s %d", start, b.profile.RangeKeyword, end)
}

// buildProperty renders the property clauses in their fixed order
func (b *Builder) buildProperty(s PropertySpec) string {
	parts := []string{s.Target}

	appendNum := func(keyword string, v *float64) {
		if v != nil {
			parts = append(parts, keyword, formatNumber(*v))
		}
	}

	appendNum("At", s.Intensity)
	if s.Color != "" {
		parts = append(parts, "Color", s.Color)
	}
	if s.Pan != nil || s.Tilt != nil {
		pos := []string{"Position"}
		if s.Pan != nil {
			pos = append(pos, formatNumber(*s.Pan))
		}
		if s.Tilt != nil {
			pos = append(pos, formatNumber(*s.Tilt))
		}
		parts = append(parts, pos...)
	}
	appendNum("Gobo", s.Gobo)
	appendNum("Zoom", s.Zoom)
	appendNum("Focus", s.Focus)
	appendNum("Iris", s.Iris)
	appendNum("Fade", s.Fade)
	appendNum("Delay", s.Delay)
	appendNum("Time", s.Time)

	return strings.TrimSpace(strings.Join(parts, " "))
}

// buildStorage renders "<Action> <Target> [<key> <value>]*"
func buildStorage(s StorageSpec) string {
	parts := []string{s.Action, s.Target}
	for _, opt := range s.Options {
		parts = append(parts, opt.Key, opt.Value)
	}
	return strings.Join(parts, " ")
}

// formatNumber renders a float without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
