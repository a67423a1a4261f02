// File: stringx.go
// Title: String Utility Functions
// Description: Implements small string helpers shared across the beamctl
//              packages. Focuses on whitespace handling and case-insensitive
//              matching for command keywords.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace rune
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// ContainsIgnoreCase reports whether substr is within s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixIgnoreCase reports whether s begins with prefix, ignoring case
func HasPrefixIgnoreCase(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// Truncate shortens s to maxLen runes, appending ellipsis when truncation occurs.
// The ellipsis counts against maxLen so the result never exceeds it.
func Truncate(s string, maxLen int, ellipsis string) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	ellRunes := []rune(ellipsis)
	if maxLen <= len(ellRunes) {
		return string(ellRunes[:maxLen])
	}
	return string(runes[:maxLen-len(ellRunes)]) + ellipsis
}

// FirstNonBlank returns the first argument that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// Fields splits s on whitespace, exactly like strings.Fields. Provided so
// callers in this module depend on one helper package for token splitting.
func Fields(s string) []string {
	return strings.Fields(s)
}
