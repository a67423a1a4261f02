// File: template_test.go
// Title: Template Engine Tests
// Description: Unit tests for template creation, parameter checking,
//              constraint enforcement, placeholder substitution, and the
//              registry.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial test suite

package template

import (
	"testing"

	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/cmdlang/param"
)

func fixtureAt(t *testing.T) *Template {
	t.Helper()
	tpl, err := New(Definition{
		Name:    "fixture_at",
		Pattern: "Fixture {fixtures} At {intensity}",
		Params: map[string]ParamType{
			"fixtures":  TypeText,
			"intensity": TypeNumber,
		},
		Rules: map[string]Rule{
			"intensity": {Kind: "intensity"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func TestGenerate(t *testing.T) {
	tpl := fixtureAt(t)
	v := param.New(nil)

	got, err := tpl.Generate(v, map[string]interface{}{
		"fixtures":  "1 Thru 10",
		"intensity": 75,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Fixture 1 Thru 10 At 75" {
		t.Errorf("Generate = %q", got)
	}
}

func TestGenerate_MissingParameter(t *testing.T) {
	tpl := fixtureAt(t)

	_, err := tpl.Generate(nil, map[string]interface{}{"fixtures": "1"})
	if err == nil {
		t.Fatal("expected missing parameter error")
	}
	if !cmderror.HasCode(err, cmderror.CodeTemplateMissingParameter) {
		t.Errorf("code = %v", cmderror.CodeOf(err))
	}
}

func TestGenerate_TypeMismatch(t *testing.T) {
	tpl := fixtureAt(t)

	_, err := tpl.Generate(nil, map[string]interface{}{
		"fixtures":  "1",
		"intensity": "bright",
	})
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
	if !cmderror.HasCode(err, cmderror.CodeTemplateTypeMismatch) {
		t.Errorf("code = %v", cmderror.CodeOf(err))
	}
}

func TestGenerate_RangeViolationNotClamped(t *testing.T) {
	tpl := fixtureAt(t)

	// 150 must fail the intensity constraint, never be silently clamped
	_, err := tpl.Generate(nil, map[string]interface{}{
		"fixtures":  "1 Thru 10",
		"intensity": 150,
	})
	if err == nil {
		t.Fatal("expected range error for intensity 150")
	}
	if !cmderror.HasCode(err, cmderror.CodeParamOutOfRange) {
		t.Errorf("code = %v, want CodeParamOutOfRange", cmderror.CodeOf(err))
	}
}

func TestGenerate_ExplicitMinMax(t *testing.T) {
	min, max := 1.0, 4.0
	tpl, err := New(Definition{
		Name:    "page",
		Pattern: "Page {n}",
		Params:  map[string]ParamType{"n": TypeNumber},
		Rules:   map[string]Rule{"n": {Min: &min, Max: &max}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tpl.Generate(nil, map[string]interface{}{"n": 5}); err == nil {
		t.Error("value above max should fail")
	}
	if _, err := tpl.Generate(nil, map[string]interface{}{"n": 0}); err == nil {
		t.Error("value below min should fail")
	}
	if got, err := tpl.Generate(nil, map[string]interface{}{"n": 2}); err != nil || got != "Page 2" {
		t.Errorf("Generate = %q, %v", got, err)
	}
}

func TestGenerate_AllowedValues(t *testing.T) {
	tpl, err := New(Definition{
		Name:    "playback",
		Pattern: "{action} Sequence {seq}",
		Params: map[string]ParamType{
			"action": TypeText,
			"seq":    TypeNumber,
		},
		Rules: map[string]Rule{
			"action": {AllowedValues: []string{"Go", "Pause", "Stop"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := tpl.Generate(nil, map[string]interface{}{"action": "go", "seq": 1})
	if err != nil {
		t.Fatal(err)
	}
	// Canonical capitalization from the allowed set
	if got != "Go Sequence 1" {
		t.Errorf("Generate = %q", got)
	}

	if _, err := tpl.Generate(nil, map[string]interface{}{"action": "Reverse", "seq": 1}); err == nil {
		t.Error("disallowed value should fail")
	}
}

func TestGenerate_UnresolvedPlaceholder(t *testing.T) {
	// Pattern references {level}, but the declaration says {intensity}
	tpl, err := New(Definition{
		Name:    "typo",
		Pattern: "Fixture {fixtures} At {level}",
		Params: map[string]ParamType{
			"fixtures":  TypeText,
			"intensity": TypeNumber,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = tpl.Generate(nil, map[string]interface{}{
		"fixtures":  "1",
		"intensity": 50,
	})
	if err == nil {
		t.Fatal("expected unresolved placeholder error")
	}
	if !cmderror.HasCode(err, cmderror.CodeTemplateUnresolvedPlaceholder) {
		t.Errorf("code = %v", cmderror.CodeOf(err))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	tpl := fixtureAt(t)
	values := map[string]interface{}{"fixtures": "1", "intensity": 80}

	first, err := tpl.Generate(nil, values)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := tpl.Generate(nil, values)
	if first != second {
		t.Error("identical inputs must produce identical output")
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Definition{Pattern: "x"}); err == nil {
		t.Error("template without name should fail")
	}
	if _, err := New(Definition{Name: "x"}); err == nil {
		t.Error("template without pattern should fail")
	}
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() == 0 {
		t.Fatal("registry should load built-in templates")
	}

	tpl, err := r.Get("FIXTURE_AT")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if tpl.Name() != "fixture_at" {
		t.Errorf("template name = %q", tpl.Name())
	}

	if _, err := r.Get("does_not_exist"); err == nil {
		t.Error("unknown template should fail")
	} else if !cmderror.HasCode(err, cmderror.CodeTemplateUnknown) {
		t.Errorf("code = %v", cmderror.CodeOf(err))
	}

	names := r.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
			break
		}
	}
}

func TestRegistry_SkipBuiltins(t *testing.T) {
	r, err := NewRegistry(Options{SkipBuiltins: true})
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("registry should be empty, has %d", r.Len())
	}

	tpl := fixtureAt(t)
	if err := r.Register(tpl); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistry_BuiltinCueStore(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	tpl, err := r.Get("store_cue")
	if err != nil {
		t.Fatal(err)
	}

	got, err := tpl.Generate(nil, map[string]interface{}{"cue": 12, "fade": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Store Cue 12 Fade 3" {
		t.Errorf("Generate = %q", got)
	}

	// Cue numbers above 9999 violate the cue kind range
	if _, err := tpl.Generate(nil, map[string]interface{}{"cue": 10000, "fade": 3}); err == nil {
		t.Error("cue 10000 should fail")
	}
}
