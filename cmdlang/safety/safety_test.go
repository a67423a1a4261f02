// File: safety_test.go
// Title: Safety Classifier Tests
// Description: Unit tests for destructive command classification against the
//              default and custom action tables.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package safety

import (
	"testing"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
)

func TestClassify_DefaultTable(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name        string
		command     string
		destructive bool
		severity    cmderror.Severity
	}{
		{name: "delete all", command: "Delete All", destructive: true, severity: cmderror.SeverityCritical},
		{name: "clear all", command: "Clear All", destructive: true, severity: cmderror.SeverityCritical},
		{name: "clear all lowercase", command: "clear all", destructive: true, severity: cmderror.SeverityCritical},
		{name: "format target", command: "Format ShowDisk", destructive: true, severity: cmderror.SeverityCritical},
		{name: "delete target", command: "Delete Cue 5", destructive: true, severity: cmderror.SeverityHigh},
		{name: "bare clear", command: "Clear", destructive: true, severity: cmderror.SeverityMedium},
		{name: "clear selection", command: "Clear Selection", destructive: true, severity: cmderror.SeverityMedium},
		{name: "off all", command: "Off All", destructive: true, severity: cmderror.SeverityMedium},
		{name: "blackout", command: "Blackout", destructive: true, severity: cmderror.SeverityMedium},
		{name: "update target", command: "Update Cue 3", destructive: true, severity: cmderror.SeverityLow},
		{name: "plain property set", command: "Fixture 1 At 50", destructive: false},
		{name: "select", command: "Select Fixture 1 Thru 10", destructive: false},
		{name: "store", command: "Store Cue 1", destructive: false},
		{name: "bare delete without target", command: "Delete", destructive: false},
		{name: "empty", command: "", destructive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.command)
			if got.Destructive != tt.destructive {
				t.Fatalf("Classify(%q).Destructive = %v, want %v", tt.command, got.Destructive, tt.destructive)
			}
			if !tt.destructive {
				return
			}
			if got.Severity != tt.severity {
				t.Errorf("severity = %v, want %v", got.Severity, tt.severity)
			}
			if got.Reason == "" {
				t.Error("destructive classification must carry a reason")
			}
		})
	}
}

func TestClassify_MostSpecificWins(t *testing.T) {
	c := New(nil)

	// "Delete All" must hit the critical exact row, not the high prefix row
	got := c.Classify("Delete All")
	if got.Severity != cmderror.SeverityCritical {
		t.Errorf("Delete All severity = %v, want critical", got.Severity)
	}
	if got.Phrase != "delete all" {
		t.Errorf("matched phrase = %q, want \"delete all\"", got.Phrase)
	}
}

func TestClassify_CustomTable(t *testing.T) {
	profile := config.DefaultProfile()
	profile.DestructiveActions = []config.DestructiveAction{
		{Phrase: "wipe", Match: config.MatchPrefix, Severity: "critical", Reason: "erases the target"},
	}
	c := New(profile)

	if got := c.Classify("Wipe Page 1"); !got.Destructive || got.Severity != cmderror.SeverityCritical {
		t.Errorf("classification = %+v", got)
	}
	// Default rows are gone in the custom table
	if got := c.Classify("Delete Cue 5"); got.Destructive {
		t.Errorf("custom table should not match delete: %+v", got)
	}
}

func TestClassify_Pure(t *testing.T) {
	c := New(nil)
	first := c.Classify("Blackout")
	second := c.Classify("Blackout")
	if first != second {
		t.Error("classification must be deterministic")
	}
}
