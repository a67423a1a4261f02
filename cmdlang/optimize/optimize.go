// File: optimize.go
// Title: Command Sequence Optimizer
// Description: Merges a selection followed by consecutive property-setting
//              commands into one equivalent command string, reducing host
//              round-trips. Relies on the host supporting trailing modifier
//              chaining after a Select, which is assumed, not verified.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package optimize

import (
	"strings"

	"github.com/beamctl/beamctl/core/config"
	"github.com/beamctl/beamctl/utils/stringx"
)

// selectPrefix introduces a selection command
const selectPrefix = "Select "

// Optimizer merges compatible command sequences
type Optimizer struct {
	profile *config.GrammarProfile
}

// New creates an optimizer. A nil profile uses the built-in defaults.
func New(profile *config.GrammarProfile) *Optimizer {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Optimizer{profile: profile}
}

// state is the transient per-call fold buffer. It is local to one Optimize
// invocation and never shared.
type state struct {
	selection string
	pending   []string
	output    []string
}

// Optimize merges consecutive compatible commands. Program order is
// preserved and the result is idempotent: optimizing an already optimized
// list changes nothing.
func (o *Optimizer) Optimize(commands []string) []string {
	s := &state{output: make([]string, 0, len(commands))}

	for _, command := range commands {
		trimmed := strings.TrimSpace(command)
		switch {
		case stringx.HasPrefixIgnoreCase(trimmed, selectPrefix):
			o.flush(s)
			s.selection = strings.TrimSpace(trimmed[len(selectPrefix):])

		case o.startsWithPropertyKeyword(trimmed):
			s.pending = append(s.pending, trimmed)

		default:
			o.flush(s)
			s.output = append(s.output, command)
		}
	}

	o.flush(s)
	return s.output
}

// flush emits buffered selection and property clauses. A selection with
// properties merges into one command; a bare selection is re-emitted
// unchanged; properties without a selection pass through in order (they
// address the host's current selection).
func (o *Optimizer) flush(s *state) {
	switch {
	case s.selection != "" && len(s.pending) > 0:
		s.output = append(s.output, s.selection+" "+strings.Join(s.pending, " "))
	case s.selection != "":
		s.output = append(s.output, selectPrefix+s.selection)
	case len(s.pending) > 0:
		s.output = append(s.output, s.pending...)
	}
	s.selection = ""
	s.pending = nil
}

// startsWithPropertyKeyword reports whether the command's first token is a
// property keyword from the profile
func (o *Optimizer) startsWithPropertyKeyword(command string) bool {
	fields := stringx.Fields(command)
	if len(fields) == 0 {
		return false
	}
	return o.profile.IsPropertyKeyword(fields[0])
}
