// File: param.go
// Title: Numeric Parameter Validation
// Description: Validates and coerces numeric value tokens against per-kind
//              ranges from the grammar profile. All validators here are pure
//              functions returning structured errors, never partial success.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package param

import (
	"strconv"
	"strings"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
)

// Kind identifies a numeric parameter family with its own value range
type Kind int

const (
	// KindIntensity is a dimmer percentage [0,100]
	KindIntensity Kind = iota

	// KindPan is a pan angle in degrees [-270,270]
	KindPan

	// KindTilt is a tilt angle in degrees [-135,135]
	KindTilt

	// KindTime is a timing value in seconds [0,3600]
	KindTime

	// KindDMX is a raw DMX channel value [0,255]
	KindDMX

	// KindCue is a cue number [0,9999]
	KindCue
)

// String returns the lower-case kind name, matching profile range keys
func (k Kind) String() string {
	switch k {
	case KindIntensity:
		return "intensity"
	case KindPan:
		return "pan"
	case KindTilt:
		return "tilt"
	case KindTime:
		return "time"
	case KindDMX:
		return "dmx"
	case KindCue:
		return "cue"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name into a Kind
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "intensity":
		return KindIntensity, true
	case "pan":
		return KindPan, true
	case "tilt":
		return KindTilt, true
	case "time", "fade", "delay":
		return KindTime, true
	case "dmx":
		return KindDMX, true
	case "cue":
		return KindCue, true
	default:
		return KindIntensity, false
	}
}

// Validator validates parameter tokens against a grammar profile
type Validator struct {
	profile *config.GrammarProfile
}

// New creates a parameter validator. A nil profile uses the built-in defaults.
func New(profile *config.GrammarProfile) *Validator {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	return &Validator{profile: profile}
}

// Profile returns the grammar profile the validator was built with
func (v *Validator) Profile() *config.GrammarProfile {
	return v.profile
}

// ValidateNumeric parses value and checks it against the range for kind.
// The parsed number is returned on success.
func (v *Validator) ValidateNumeric(value string, kind Kind) (float64, error) {
	trimmed := strings.TrimSpace(value)
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, cmderror.Newf("%s value %q is not a number", kind, trimmed).
			WithCode(cmderror.CodeParamNotNumeric).
			WithOperation("param.ValidateNumeric").
			WithDetail("kind", kind.String())
	}

	r, ok := v.profile.Range(kind.String())
	if !ok {
		// Profile without a range for this kind accepts any number
		return n, nil
	}

	if !r.Contains(n) {
		return 0, cmderror.Newf("%s value %v is outside the range %v to %v", kind, n, r.Min, r.Max).
			WithCode(cmderror.CodeParamOutOfRange).
			WithOperation("param.ValidateNumeric").
			WithDetail("kind", kind.String()).
			WithDetail("value", n).
			WithSuggestion(rangeSuggestion(kind, r))
	}

	return n, nil
}

// rangeSuggestion renders a bound-specific correction hint
func rangeSuggestion(kind Kind, r config.NumericRange) string {
	var b strings.Builder
	b.WriteString("use a ")
	b.WriteString(kind.String())
	b.WriteString(" value between ")
	b.WriteString(strconv.FormatFloat(r.Min, 'f', -1, 64))
	b.WriteString(" and ")
	b.WriteString(strconv.FormatFloat(r.Max, 'f', -1, 64))
	return b.String()
}
