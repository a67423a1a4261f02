// File: optimize_test.go
// Title: Sequence Optimizer Tests
// Description: Unit tests for selection/property merging, order
//              preservation, idempotence, and pass-through behavior.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package optimize

import (
	"reflect"
	"testing"

	"github.com/beamctl/beamctl/core/config"
)

func TestOptimize_MergesSelections(t *testing.T) {
	o := New(nil)

	input := []string{
		"Select Fixture 1",
		"At 50",
		"Color Red",
		"Select Fixture 2",
		"At 75",
	}
	expected := []string{
		"Fixture 1 At 50 Color Red",
		"Fixture 2 At 75",
	}

	got := o.Optimize(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_OtherCommandFlushes(t *testing.T) {
	o := New(nil)

	input := []string{
		"Select Fixture 1",
		"At 50",
		"Store Cue 1",
		"At 75",
	}
	expected := []string{
		"Fixture 1 At 50",
		"Store Cue 1",
		"At 75",
	}

	got := o.Optimize(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_BareSelectionSurvives(t *testing.T) {
	o := New(nil)

	input := []string{"Select Fixture 1", "Store Cue 1"}
	expected := []string{"Select Fixture 1", "Store Cue 1"}

	got := o.Optimize(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_PropertiesWithoutSelectionPassThrough(t *testing.T) {
	o := New(nil)

	input := []string{"At 50", "Color Blue"}
	got := o.Optimize(input)
	if !reflect.DeepEqual(got, input) {
		t.Errorf("Optimize = %v, want %v", got, input)
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	o := New(nil)

	inputs := [][]string{
		{"Select Fixture 1", "At 50", "Color Red", "Select Fixture 2", "At 75"},
		{"Select Fixture 1", "Store Cue 1"},
		{"At 50"},
		{"Store Cue 1", "Go Sequence 1"},
		{},
	}

	for _, input := range inputs {
		once := o.Optimize(input)
		twice := o.Optimize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent: first %v, second %v", once, twice)
		}
	}
}

func TestOptimize_PreservesOrder(t *testing.T) {
	o := New(nil)

	input := []string{
		"Go Sequence 1",
		"Select Fixture 5",
		"At 100",
		"Pause Sequence 1",
	}
	expected := []string{
		"Go Sequence 1",
		"Fixture 5 At 100",
		"Pause Sequence 1",
	}

	got := o.Optimize(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_CaseInsensitiveSelect(t *testing.T) {
	o := New(nil)

	got := o.Optimize([]string{"select Fixture 1", "At 50"})
	expected := []string{"Fixture 1 At 50"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_CustomProfileKeywords(t *testing.T) {
	profile := config.DefaultProfile()
	profile.PropertyKeywords = []string{"Level"}
	o := New(profile)

	input := []string{"Select Fixture 1", "Level 80", "At 50"}
	// "At" is not a property keyword in this profile, so it flushes
	expected := []string{"Fixture 1 Level 80", "At 50"}

	got := o.Optimize(input)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Optimize = %v, want %v", got, expected)
	}
}

func TestOptimize_EmptyInput(t *testing.T) {
	o := New(nil)

	got := o.Optimize(nil)
	if len(got) != 0 {
		t.Errorf("Optimize(nil) = %v, want empty", got)
	}
}
