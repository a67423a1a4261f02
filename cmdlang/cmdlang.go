// File: cmdlang.go
// Title: Command Language Engine
// Description: Provides the high-level API over the command pipeline:
//              syntax and parameter validation, safety classification,
//              template expansion, structured command building, sequence
//              optimization, and dispatch to the host runtime.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package cmdlang

import (
	"context"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/core/log"
	"github.com/beamctl/beamctl/cmdlang/builder"
	"github.com/beamctl/beamctl/cmdlang/dispatch"
	"github.com/beamctl/beamctl/cmdlang/optimize"
	"github.com/beamctl/beamctl/cmdlang/param"
	"github.com/beamctl/beamctl/cmdlang/safety"
	"github.com/beamctl/beamctl/cmdlang/syntax"
	"github.com/beamctl/beamctl/cmdlang/template"
)

// Engine coordinates the pipeline components. All components share one
// grammar profile so validation, classification, building, and optimization
// agree on the accepted grammar.
type Engine struct {
	config     *config.Config
	syntax     *syntax.Validator
	params     *param.Validator
	safety     *safety.Classifier
	templates  *template.Registry
	builder    *builder.Builder
	optimizer  *optimize.Optimizer
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *log.Logger

	// Config supplies the grammar profile and execution policy. Nil uses
	// the built-in defaults.
	Config *config.Config

	// Runner is the host runtime. Optional: without it the engine still
	// validates, builds, and optimizes, but Execute calls fail.
	Runner dispatch.Runner

	// SkipBuiltinTemplates leaves the template registry empty
	SkipBuiltinTemplates bool
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger: log.GetDefault(),
		Config: config.Default(),
	}
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Config != nil {
			options.Config = provided.Config
		}
		options.Runner = provided.Runner
		options.SkipBuiltinTemplates = provided.SkipBuiltinTemplates
	}

	if err := options.Config.Validate(); err != nil {
		return nil, err
	}

	logger := options.Logger.WithField("component", "cmdlang-engine")
	profile := &options.Config.Grammar

	registry, err := template.NewRegistry(template.Options{
		SkipBuiltins: options.SkipBuiltinTemplates,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		config:    options.Config,
		syntax:    syntax.New(profile),
		params:    param.New(profile),
		safety:    safety.New(profile),
		templates: registry,
		builder:   builder.New(profile),
		optimizer: optimize.New(profile),
		logger:    logger,
	}

	if options.Runner != nil {
		dispatchOpts := dispatch.OptionsFromConfig(options.Config.Execution)
		dispatchOpts.Runner = options.Runner
		dispatchOpts.Logger = logger
		dispatchOpts.Profile = profile
		engine.dispatcher, err = dispatch.New(dispatchOpts)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("engine initialized", log.Fields{
		"templates":       registry.Len(),
		"max_attempts":    options.Config.Execution.MaxAttempts,
		"safety_check":    options.Config.Execution.SafetyCheck,
		"halt_on_error":   options.Config.Execution.HaltOnError,
		"runner_attached": options.Runner != nil,
	})

	return engine, nil
}

// ValidateSyntax checks the structural well-formedness of a command string
func (e *Engine) ValidateSyntax(command string) syntax.ValidationResult {
	return e.syntax.Validate(command)
}

// ValidateNumeric checks a numeric value against the named parameter kind
func (e *Engine) ValidateNumeric(value string, kind param.Kind) (float64, error) {
	return e.params.ValidateNumeric(value, kind)
}

// ValidateReference checks an object reference expression
func (e *Engine) ValidateReference(expr string) (*param.Reference, error) {
	return e.params.ValidateObjectReference(expr)
}

// ValidateColor checks a color expression
func (e *Engine) ValidateColor(expr string) (*param.Color, error) {
	return e.params.ValidateColor(expr)
}

// Classify checks the command against the destructive action table
func (e *Engine) Classify(command string) safety.Classification {
	return e.safety.Classify(command)
}

// Templates exposes the template registry for registration and listing
func (e *Engine) Templates() *template.Registry {
	return e.templates
}

// Render expands the named template with the supplied values and validates
// the resulting command string
func (e *Engine) Render(name string, values map[string]interface{}) (string, error) {
	tpl, err := e.templates.Get(name)
	if err != nil {
		return "", err
	}
	command, err := tpl.Generate(e.params, values)
	if err != nil {
		return "", err
	}
	if result := e.syntax.Validate(command); !result.Valid {
		return "", result.Err
	}
	return command, nil
}

// Build composes a structured specification into a command string and
// validates the result
func (e *Engine) Build(spec builder.Spec) (string, error) {
	command := e.builder.Build(spec)
	if result := e.syntax.Validate(command); !result.Valid {
		return "", result.Err
	}
	return command, nil
}

// BuildAll composes several specifications, stopping at the first failure
func (e *Engine) BuildAll(specs ...builder.Spec) ([]string, error) {
	commands := make([]string, 0, len(specs))
	for _, spec := range specs {
		command, err := e.Build(spec)
		if err != nil {
			return nil, err
		}
		commands = append(commands, command)
	}
	return commands, nil
}

// Optimize merges consecutive compatible commands
func (e *Engine) Optimize(commands []string) []string {
	return e.optimizer.Optimize(commands)
}

// Execute dispatches one command to the host runtime
func (e *Engine) Execute(ctx context.Context, command string) (*dispatch.Result, error) {
	if e.dispatcher == nil {
		return nil, errNoRunner()
	}
	return e.dispatcher.Dispatch(ctx, command), nil
}

// ExecuteConfirmed dispatches one command with the destructive confirmation
// gate already satisfied
func (e *Engine) ExecuteConfirmed(ctx context.Context, command string) (*dispatch.Result, error) {
	if e.dispatcher == nil {
		return nil, errNoRunner()
	}
	return e.dispatcher.DispatchConfirmed(ctx, command), nil
}

// ExecuteBatch optimizes the command list and dispatches it in order
func (e *Engine) ExecuteBatch(ctx context.Context, commands []string) (*dispatch.BatchResult, error) {
	if e.dispatcher == nil {
		return nil, errNoRunner()
	}
	return e.dispatcher.DispatchBatch(ctx, e.optimizer.Optimize(commands)), nil
}

// Config returns the engine's configuration
func (e *Engine) Config() *config.Config {
	return e.config
}

func errNoRunner() error {
	return cmderror.New("engine has no host runner attached").
		WithCode(cmderror.CodeConfigInvalid).
		WithOperation("cmdlang.Execute").
		WithSuggestion("pass a Runner in the engine options")
}
