// File: registry.go
// Title: Template Registry
// Description: Holds named command templates for process-wide reuse. Names
//              are case-insensitive. The registry ships with built-in
//              templates for the common selection, property, and storage
//              patterns and accepts custom registrations.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package template

import (
	"sort"
	"strings"
	"sync"

	cmderror "github.com/beamctl/beamctl/core/error"
)

// Registry stores templates by case-insensitive name
type Registry struct {
	templates map[string]*Template
	mutex     sync.RWMutex
}

// Options configures registry creation
type Options struct {
	// SkipBuiltins leaves the registry empty instead of loading the
	// built-in template set
	SkipBuiltins bool
}

// NewRegistry creates a registry, loading the built-in templates unless
// disabled
func NewRegistry(opts ...Options) (*Registry, error) {
	r := &Registry{templates: make(map[string]*Template)}

	skip := len(opts) > 0 && opts[0].SkipBuiltins
	if !skip {
		for _, def := range builtinDefinitions() {
			tpl, err := New(def)
			if err != nil {
				return nil, cmderror.Wrap(err, "failed to load built-in template")
			}
			if err := r.Register(tpl); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Register adds a template. Re-registering a name replaces the previous
// template.
func (r *Registry) Register(tpl *Template) error {
	if tpl == nil {
		return cmderror.New("cannot register nil template").
			WithCode(cmderror.CodeTemplateUnknown).
			WithOperation("template.Registry.Register")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.templates[strings.ToLower(tpl.Name())] = tpl
	return nil
}

// Get looks up a template by name, case-insensitively
func (r *Registry) Get(name string) (*Template, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tpl, ok := r.templates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, cmderror.Newf("unknown template %q", name).
			WithCode(cmderror.CodeTemplateUnknown).
			WithOperation("template.Registry.Get").
			WithSuggestion("list available templates with Names()")
	}
	return tpl, nil
}

// Names returns all registered template names in lexical order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.templates))
	for _, tpl := range r.templates {
		names = append(names, tpl.Name())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.templates)
}

// builtinDefinitions returns the built-in template set
func builtinDefinitions() []Definition {
	return []Definition{
		{
			Name:        "fixture_at",
			Description: "Set intensity on fixtures",
			Pattern:     "Fixture {fixtures} At {intensity}",
			Params: map[string]ParamType{
				"fixtures":  TypeText,
				"intensity": TypeNumber,
			},
			Rules: map[string]Rule{
				"intensity": {Kind: "intensity"},
			},
		},
		{
			Name:        "fixture_color",
			Description: "Set color on fixtures",
			Pattern:     "Fixture {fixtures} Color {color}",
			Params: map[string]ParamType{
				"fixtures": TypeText,
				"color":    TypeText,
			},
		},
		{
			Name:        "store_cue",
			Description: "Store the programmer content into a cue",
			Pattern:     "Store Cue {cue} Fade {fade}",
			Params: map[string]ParamType{
				"cue":  TypeNumber,
				"fade": TypeNumber,
			},
			Rules: map[string]Rule{
				"cue":  {Kind: "cue"},
				"fade": {Kind: "time"},
			},
		},
		{
			Name:        "goto_cue",
			Description: "Jump to a cue in a sequence",
			Pattern:     "Goto Cue {cue}",
			Params: map[string]ParamType{
				"cue": TypeNumber,
			},
			Rules: map[string]Rule{
				"cue": {Kind: "cue"},
			},
		},
		{
			Name:        "select_group",
			Description: "Select a named group",
			Pattern:     `Select Group "{group}"`,
			Params: map[string]ParamType{
				"group": TypeText,
			},
		},
	}
}
