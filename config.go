package oaswift

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the generation configuration, typically loaded from an
// oaswift.yaml next to the document.
type Config struct {
	// Naming configures identifier sanitization.
	Naming NamingOptions `yaml:"naming"`

	// Runtime overrides the well-known runtime type names.
	Runtime RuntimeOptions `yaml:"runtime"`

	// Output configures the emitted Swift file.
	Output OutputOptions `yaml:"output"`
}

// NamingOptions selects the sanitization strategy and per-name overrides.
type NamingOptions struct {
	// Strategy is "defensive" (default) or "idiomatic".
	Strategy string `yaml:"strategy" validate:"omitempty,oneof=defensive idiomatic"`

	// Overrides maps raw document names to the exact identifier to use,
	// bypassing sanitization.
	Overrides map[string]string `yaml:"overrides"`
}

// RuntimeOptions overrides the runtime types backing opaque payloads. Empty
// fields keep the defaults.
type RuntimeOptions struct {
	ObjectContainer string `yaml:"objectContainer"`
	ValueContainer  string `yaml:"valueContainer"`
	DateType        string `yaml:"dateType"`
	DataType        string `yaml:"dataType"`
}

// OutputOptions configures the rendered file.
type OutputOptions struct {
	// File is the output path relative to the sink root.
	File string `yaml:"file"`

	// AccessModifier is applied to every declaration.
	AccessModifier string `yaml:"accessModifier" validate:"omitempty,oneof=public package internal"`

	// Frontmatter replaces the default header and import block.
	Frontmatter string `yaml:"frontmatter"`

	// Comments controls whether schema descriptions become doc comments.
	// Nil means on.
	Comments *bool `yaml:"comments"`
}

// DefaultOutputFile is where generated declarations land unless configured.
const DefaultOutputFile = "Types.swift"

// DefaultFrontmatter is the header of a generated file.
const DefaultFrontmatter = "// Generated by oaswift. Do not edit.\nimport Foundation\nimport OpenAPIRuntime"

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			messages = append(messages, ve.Field()+": "+formatValidationError(ve))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

// formatValidationError converts a validator.FieldError to a human-readable
// message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
