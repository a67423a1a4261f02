// File: entry.go
// Title: Log Entry Definition
// Description: Defines the Entry type passed to formatters and the Fields
//              map used for structured context values.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package log

import (
	"sort"
	"time"
)

// Fields represents structured key/value context attached to log entries
type Fields map[string]interface{}

// Entry represents a single log event handed to a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
}

// SortedKeys returns the field keys in lexical order for stable output
func (e *Entry) SortedKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merged returns a new Fields map combining base context with call fields.
// Call fields win on key collision.
func merged(base Fields, extra []Fields) Fields {
	out := make(Fields, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, f := range extra {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}
