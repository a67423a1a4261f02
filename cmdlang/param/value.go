// File: value.go
// Title: Parameter Value Union
// Description: Defines the tagged value union used by the template engine
//              and builder: a parameter value is a number, text, or boolean,
//              with exhaustive matching at validation sites instead of
//              silent coercion.
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

	cmderror "github.com/beamctl/beamctl/core/error"
)

// ValueKind tags the active member of a Value
type ValueKind int

const (
	// ValueNumber holds a float64
	ValueNumber ValueKind = iota

	// ValueText holds a string
	ValueText

	// ValueBoolean holds a bool
	ValueBoolean
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueText:
		return "text"
	case ValueBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a tagged union of the parameter value types
type Value struct {
	kind    ValueKind
	number  float64
	text    string
	boolean bool
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{kind: ValueNumber, number: n}
}

// Text creates a text value
func Text(s string) Value {
	return Value{kind: ValueText, text: s}
}

// Boolean creates a boolean value
func Boolean(b bool) Value {
	return Value{kind: ValueBoolean, boolean: b}
}

// FromAny converts a plain Go value into a Value. Integers and floats
// become numbers; everything else must already be string or bool.
func FromAny(v interface{}) (Value, error) {
	switch t := v.(type) {
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case string:
		return Text(t), nil
	case bool:
		return Boolean(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, cmderror.Newf("unsupported parameter value type %T", v).
			WithCode(cmderror.CodeTemplateTypeMismatch).
			WithOperation("param.FromAny")
	}
}

// Kind returns the active member tag
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsNumber returns the numeric member. ok is false for non-numbers; text
// that parses as a number is not coerced.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.number, true
}

// AsText returns the text member
func (v Value) AsText() (string, bool) {
	if v.kind != ValueText {
		return "", false
	}
	return v.text, true
}

// AsBoolean returns the boolean member
func (v Value) AsBoolean() (bool, bool) {
	if v.kind != ValueBoolean {
		return false, false
	}
	return v.boolean, true
}

// Render returns the command-string representation of the value. Numbers
// drop trailing zeros so "75" renders as "75", not "75.000000".
func (v Value) Render() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case ValueText:
		return v.text
	case ValueBoolean:
		if v.boolean {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
