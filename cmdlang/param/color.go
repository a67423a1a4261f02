// File: color.go
// Title: Color Value Validation
// Description: Validates color tokens against the color grammar: hex values
//              (#RGB or #RRGGBB), comma-separated RGB components, and the
//              profile's named color set. Alternatives are tried in that
//              order and the first match wins.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package param

import (
	"regexp"
	"strconv"
	"strings"

	cmderror "github.com/beamctl/beamctl/core/error"
)

// ColorForm identifies which alternative of the color grammar matched
type ColorForm int

const (
	// ColorHex is a #RGB or #RRGGBB hex value
	ColorHex ColorForm = iota

	// ColorRGB is a comma-separated component triple
	ColorRGB

	// ColorNamed is a name from the profile's color set
	ColorNamed
)

// String returns the color form name
func (f ColorForm) String() string {
	switch f {
	case ColorHex:
		return "hex"
	case ColorRGB:
		return "rgb"
	case ColorNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Color is the validated form of a color token. R, G, and B are resolved
// for hex and rgb forms; named colors keep only their canonical name.
type Color struct {
	Form ColorForm
	R    uint8
	G    uint8
	B    uint8
	Name string
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor parses text against the color grammar
func (v *Validator) ValidateColor(text string) (*Color, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, colorError(trimmed, "color is empty")
	}

	// (a) hex
	if strings.HasPrefix(trimmed, "#") {
		if !hexColorPattern.MatchString(trimmed) {
			return nil, colorError(trimmed, "hex colors need 3 or 6 hex digits")
		}
		r, g, b := parseHex(trimmed[1:])
		return &Color{Form: ColorHex, R: r, G: g, B: b}, nil
	}

	// (b) comma-separated r,g,b
	if strings.Contains(trimmed, ",") {
		parts := strings.Split(trimmed, ",")
		if len(parts) != 3 {
			return nil, colorError(trimmed, "rgb colors need exactly 3 components")
		}
		var comps [3]uint8
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 255 {
				return nil, colorError(trimmed, "rgb components must be integers between 0 and 255")
			}
			comps[i] = uint8(n)
		}
		return &Color{Form: ColorRGB, R: comps[0], G: comps[1], B: comps[2]}, nil
	}

	// (c) named color
	for _, name := range v.profile.NamedColors {
		if strings.EqualFold(name, trimmed) {
			return &Color{Form: ColorNamed, Name: name}, nil
		}
	}

	return nil, colorError(trimmed, "not a hex value, rgb triple, or known color name")
}

// parseHex expands 3-digit shorthand and converts to components. The input
// is already validated against hexColorPattern.
func parseHex(digits string) (r, g, b uint8) {
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	rv, _ := strconv.ParseUint(digits[0:2], 16, 8)
	gv, _ := strconv.ParseUint(digits[2:4], 16, 8)
	bv, _ := strconv.ParseUint(digits[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv)
}

// colorError builds the generic invalid-color error
func colorError(text, reason string) *cmderror.Error {
	return cmderror.Newf("invalid color %q: %s", text, reason).
		WithCode(cmderror.CodeParamInvalidColor).
		WithOperation("param.ValidateColor").
		WithSuggestion(`use "#RRGGBB", "r,g,b", or a color name like "Red"`)
}
