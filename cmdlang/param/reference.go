// File: reference.go
// Title: Object Reference Validation
// Description: Validates object reference tokens against the reference
//              grammar: single index, quoted name, inclusive range,
//              multi-selection, and bare name. Shapes are tried in that
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

// ReferenceShape identifies which alternative of the reference grammar matched
type ReferenceShape int

const (
	// ShapeSingle is a single positive index: "12"
	ShapeSingle ReferenceShape = iota

	// ShapeRange is an inclusive range: "1 Thru 10"
	ShapeRange

	// ShapeMulti is a combined selection: "1+3+5"
	ShapeMulti

	// ShapeQuotedName is a double-quoted name: "\"My Group\""
	ShapeQuotedName

	// ShapeName is a bare name: "Stage_Left"
	ShapeName
)

// String returns the shape name
func (s ReferenceShape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeRange:
		return "range"
	case ShapeMulti:
		return "multi"
	case ShapeQuotedName:
		return "quoted-name"
	case ShapeName:
		return "name"
	default:
		return "unknown"
	}
}

// Reference is the validated form of an object reference token
type Reference struct {
	Shape ReferenceShape

	// Index for ShapeSingle
	Index int

	// Start and End for ShapeRange (inclusive)
	Start int
	End   int

	// Indices for ShapeMulti, in input order
	Indices []int

	// Name for ShapeQuotedName and ShapeName, without quotes
	Name string
}

const (
	// maxIndex is the largest addressable object index
	maxIndex = 9999

	// maxNameLength bounds quoted and bare names
	maxNameLength = 50
)

var bareNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,50}$`)

// ValidateObjectReference parses text against the reference grammar. The
// alternatives are tried in a fixed order; the first matching shape wins.
func (v *Validator) ValidateObjectReference(text string) (*Reference, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, referenceError(trimmed, "reference is empty")
	}

	// (a) single positive integer
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > maxIndex {
			return nil, cmderror.Newf("object index %d is outside the range 1 to %d", n, maxIndex).
				WithCode(cmderror.CodeParamOutOfRange).
				WithOperation("param.ValidateObjectReference").
				WithSuggestion("use an index between 1 and 9999")
		}
		return &Reference{Shape: ShapeSingle, Index: n}, nil
	}

	// (b) double-quoted name. Checked before the numeric shapes: a quoted
	// name may contain the range keyword or the combine operator ("A Thru B",
	// "Front+Back") and must still match this alternative.
	if strings.HasPrefix(trimmed, `"`) {
		if !strings.HasSuffix(trimmed, `"`) || len(trimmed) < 2 {
			return nil, referenceError(trimmed, "quoted name must end with a closing quote")
		}
		name := trimmed[1 : len(trimmed)-1]
		if len(name) < 1 || len(name) > maxNameLength {
			return nil, referenceError(trimmed, "quoted name must be 1 to 50 characters long")
		}
		return &Reference{Shape: ShapeQuotedName, Name: name}, nil
	}

	// (c) inclusive range "<start> Thru <end>"
	if ref, matched, err := v.tryRange(trimmed); matched {
		return ref, err
	}

	// (d) multi-selection "<n1>+<n2>+..."
	if ref, matched, err := v.tryMulti(trimmed); matched {
		return ref, err
	}

	// (e) bare name
	if bareNamePattern.MatchString(trimmed) {
		return &Reference{Shape: ShapeName, Name: trimmed}, nil
	}

	return nil, referenceError(trimmed, "reference matches no known shape")
}

// tryRange attempts the "<start> Thru <end>" alternative. matched reports
// whether the input structurally looked like a range; err carries bound or
// order violations for matched inputs.
func (v *Validator) tryRange(text string) (*Reference, bool, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 || !strings.EqualFold(fields[1], v.profile.RangeKeyword) {
		return nil, false, nil
	}

	start, err1 := strconv.Atoi(fields[0])
	end, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return nil, true, referenceError(text, "range bounds must be integers")
	}
	if start < 1 || start > maxIndex || end < 1 || end > maxIndex {
		return nil, true, cmderror.Newf("range bounds must be between 1 and %d", maxIndex).
			WithCode(cmderror.CodeParamOutOfRange).
			WithOperation("param.ValidateObjectReference")
	}
	if start >= end {
		return nil, true, cmderror.Newf("range start %d must be below end %d", start, end).
			WithCode(cmderror.CodeParamRangeOrder).
			WithOperation("param.ValidateObjectReference").
			WithSuggestion("swap the range bounds")
	}

	return &Reference{Shape: ShapeRange, Start: start, End: end}, true, nil
}

// tryMulti attempts the "<n1>+<n2>+..." alternative
func (v *Validator) tryMulti(text string) (*Reference, bool, error) {
	if !strings.Contains(text, v.profile.CombineOperator) {
		return nil, false, nil
	}

	parts := strings.Split(text, v.profile.CombineOperator)
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, true, referenceError(text, "multi-selection terms must be integers")
		}
		if n < 1 || n > maxIndex {
			return nil, true, cmderror.Newf("multi-selection term %d is outside the range 1 to %d", n, maxIndex).
				WithCode(cmderror.CodeParamOutOfRange).
				WithOperation("param.ValidateObjectReference")
		}
		indices = append(indices, n)
	}

	return &Reference{Shape: ShapeMulti, Indices: indices}, true, nil
}

// referenceError builds the generic invalid-reference error
func referenceError(text, reason string) *cmderror.Error {
	return cmderror.Newf("invalid object reference %q: %s", text, reason).
		WithCode(cmderror.CodeParamInvalidReference).
		WithOperation("param.ValidateObjectReference").
		WithSuggestion(`use an index, a range like "1 Thru 10", a combination like "1+2+3", or a name`)
}
