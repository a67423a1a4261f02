// File: template.go
// Title: Command Template Engine
// Description: Expands named patterns with {placeholder} parameters into
//              concrete command strings. Supplied arguments are checked
//              against declared types and constraints before substitution;
//              any placeholder left unresolved afterwards is an error, which
//              catches pattern typos and missing declarations.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package template

import (
	"regexp"
	"sort"
	"strings"

	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/cmdlang/param"
)

// ParamType declares the expected value type of a template parameter
type ParamType int

const (
	// TypeNumber requires a numeric value
	TypeNumber ParamType = iota

	// TypeText requires a text value
	TypeText
)

// String returns the type name
func (t ParamType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Rule constrains one parameter. Kind delegates range checking to the
// parameter validator; Min/Max bound numbers directly; AllowedValues
// restricts text to a fixed set.
type Rule struct {
	Kind          string
	Min           *float64
	Max           *float64
	AllowedValues []string
}

// Template is an immutable named command pattern. Create it once and reuse
// it; Generate never mutates the template.
type Template struct {
	name        string
	description string
	pattern     string
	params      map[string]ParamType
	rules       map[string]Rule
}

// Definition declares a template for registration
type Definition struct {
	Name        string
	Description string
	Pattern     string
	Params      map[string]ParamType
	Rules       map[string]Rule
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// New creates a template from a definition
func New(def Definition) (*Template, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, cmderror.New("template requires a name").
			WithCode(cmderror.CodeTemplateUnknown).
			WithOperation("template.New")
	}
	if strings.TrimSpace(def.Pattern) == "" {
		return nil, cmderror.Newf("template %q requires a pattern", def.Name).
			WithCode(cmderror.CodeTemplateUnknown).
			WithOperation("template.New")
	}

	params := make(map[string]ParamType, len(def.Params))
	for k, v := range def.Params {
		params[k] = v
	}
	rules := make(map[string]Rule, len(def.Rules))
	for k, v := range def.Rules {
		rules[k] = v
	}

	return &Template{
		name:        def.Name,
		description: def.Description,
		pattern:     def.Pattern,
		params:      params,
		rules:       rules,
	}, nil
}

// Name returns the template name
func (t *Template) Name() string {
	return t.name
}

// Description returns the template description
func (t *Template) Description() string {
	return t.description
}

// Pattern returns the raw pattern string
func (t *Template) Pattern() string {
	return t.pattern
}

// ParamNames returns the declared parameter names in lexical order
func (t *Template) ParamNames() []string {
	names := make([]string, 0, len(t.params))
	for name := range t.params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate expands the pattern with the supplied values. Identical inputs
// always produce an identical output string.
func (t *Template) Generate(validator *param.Validator, values map[string]interface{}) (string, error) {
	if validator == nil {
		validator = param.New(nil)
	}

	rendered := make(map[string]string, len(t.params))
	for _, name := range t.ParamNames() {
		declared := t.params[name]

		raw, supplied := values[name]
		if !supplied {
			return "", cmderror.Newf("template %q is missing parameter %q", t.name, name).
				WithCode(cmderror.CodeTemplateMissingParameter).
				WithOperation("template.Generate").
				WithSuggestion("supply a value for " + name)
		}

		value, err := param.FromAny(raw)
		if err != nil {
			return "", err
		}

		checked, err := t.checkValue(validator, name, declared, value)
		if err != nil {
			return "", err
		}
		rendered[name] = checked
	}

	out := placeholderPattern.ReplaceAllStringFunc(t.pattern, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := rendered[name]; ok {
			return v
		}
		return match
	})

	if remaining := placeholderPattern.FindString(out); remaining != "" {
		return "", cmderror.Newf("template %q left placeholder %s unresolved", t.name, remaining).
			WithCode(cmderror.CodeTemplateUnresolvedPlaceholder).
			WithOperation("template.Generate").
			WithSuggestion("declare the parameter or fix the pattern")
	}

	return out, nil
}

// checkValue enforces the declared type and the parameter's rule, returning
// the rendered string form
func (t *Template) checkValue(validator *param.Validator, name string, declared ParamType, value param.Value) (string, error) {
	rule := t.rules[name]

	switch declared {
	case TypeNumber:
		n, ok := value.AsNumber()
		if !ok {
			return "", typeMismatch(t.name, name, declared, value)
		}
		if rule.Kind != "" {
			kind, known := param.ParseKind(rule.Kind)
			if known {
				if _, err := validator.ValidateNumeric(value.Render(), kind); err != nil {
					return "", err
				}
			}
		}
		if rule.Min != nil && n < *rule.Min {
			return "", cmderror.Newf("parameter %q value %v below minimum %v", name, n, *rule.Min).
				WithCode(cmderror.CodeParamOutOfRange).
				WithOperation("template.Generate")
		}
		if rule.Max != nil && n > *rule.Max {
			return "", cmderror.Newf("parameter %q value %v above maximum %v", name, n, *rule.Max).
				WithCode(cmderror.CodeParamOutOfRange).
				WithOperation("template.Generate")
		}
		return value.Render(), nil

	case TypeText:
		s, ok := value.AsText()
		if !ok {
			return "", typeMismatch(t.name, name, declared, value)
		}
		if len(rule.AllowedValues) > 0 {
			for _, allowed := range rule.AllowedValues {
				if strings.EqualFold(allowed, s) {
					return allowed, nil
				}
			}
			return "", cmderror.Newf("parameter %q value %q is not one of %v", name, s, rule.AllowedValues).
				WithCode(cmderror.CodeParamOutOfRange).
				WithOperation("template.Generate")
		}
		return s, nil

	default:
		return "", cmderror.Newf("parameter %q has unknown declared type", name).
			WithCode(cmderror.CodeInternal).
			WithOperation("template.Generate")
	}
}

// typeMismatch builds the mismatch error
func typeMismatch(templateName, paramName string, declared ParamType, value param.Value) *cmderror.Error {
	return cmderror.Newf("template %q parameter %q expects %s, got %s",
		templateName, paramName, declared, value.Kind()).
		WithCode(cmderror.CodeTemplateTypeMismatch).
		WithOperation("template.Generate")
}
