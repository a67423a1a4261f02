// File: config.go
// Title: Configuration Loading
// Description: Loads beamctl configuration from TOML and YAML files with
//              format auto-detection from the file extension. Configuration
//              covers the grammar profile and the dispatcher's execution
//              policy; everything has working defaults.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cmderror "github.com/beamctl/beamctl/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ExecutionConfig holds dispatcher policy settings
type ExecutionConfig struct {
	// MaxAttempts per command, 1 means no retry
	MaxAttempts int `toml:"max_attempts" yaml:"max_attempts"`

	// SafetyCheck enables the destructive classifier before execution
	SafetyCheck bool `toml:"safety_check" yaml:"safety_check"`

	// ConfirmDestructive requires confirmation for destructive commands
	ConfirmDestructive bool `toml:"confirm_destructive" yaml:"confirm_destructive"`

	// HaltOnError stops remaining batch items after a failure
	HaltOnError bool `toml:"halt_on_error" yaml:"halt_on_error"`

	// TimeoutSeconds bounds a dispatch call, 0 disables the check
	TimeoutSeconds int `toml:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration
func (e ExecutionConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// Config is the root configuration document
type Config struct {
	Grammar   GrammarProfile  `toml:"grammar" yaml:"grammar"`
	Execution ExecutionConfig `toml:"execution" yaml:"execution"`
}

// Default returns a configuration with the built-in grammar profile and
// dispatcher defaults
func Default() *Config {
	return &Config{
		Grammar: *DefaultProfile(),
		Execution: ExecutionConfig{
			MaxAttempts:        1,
			SafetyCheck:        true,
			ConfirmDestructive: true,
			HaltOnError:        true,
			TimeoutSeconds:     0,
		},
	}
}

// Load reads a configuration file, auto-detecting the format
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads a configuration file in the given format. Sections
// absent from the file keep their defaults.
func LoadWithFormat(path string, format Format) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cmderror.Wrap(err, "configuration file not found").
				WithCode(cmderror.CodeConfigMissing).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, cmderror.Wrap(err, "failed to read configuration file").
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, cmderror.Wrap(err, "failed to parse YAML configuration").
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, cmderror.Wrap(err, "failed to parse TOML configuration").
				WithCode(cmderror.CodeConfigInvalid).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the whole configuration for consistency
func (c *Config) Validate() error {
	if err := c.Grammar.Validate(); err != nil {
		return err
	}
	if c.Execution.MaxAttempts < 1 {
		return cmderror.Newf("execution max_attempts must be at least 1, got %d", c.Execution.MaxAttempts).
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Validate")
	}
	if c.Execution.TimeoutSeconds < 0 {
		return cmderror.Newf("execution timeout_seconds must not be negative, got %d", c.Execution.TimeoutSeconds).
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("config.Validate")
	}
	return nil
}

// detectFormat infers the file format from the extension, defaulting to TOML
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
