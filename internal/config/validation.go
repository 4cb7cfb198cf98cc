package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateBench()...)

	for _, name := range c.ListFixtures() {
		f := c.Fixtures[name]
		errors = append(errors, c.validateFixture(name, &f)...)
	}

	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateBench() ValidationErrors {
	var errors ValidationErrors

	if c.Bench.Iterations <= 0 {
		errors = append(errors, ValidationError{
			Field:   "bench.iterations",
			Message: "iterations must be positive",
		})
	}

	switch {
	case c.Bench.Size < 0:
		errors = append(errors, ValidationError{
			Field:   "bench.size",
			Message: "size cannot be negative",
		})
	case c.Bench.Size == 1:
		// Generated fixtures need two nodes for a tail loop.
		errors = append(errors, ValidationError{
			Field:   "bench.size",
			Message: "size must be 0 or at least 2",
		})
	}

	if c.Bench.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "bench.timeout_seconds",
			Message: "timeout_seconds cannot be negative",
		})
	}

	for i, name := range c.Bench.Strategies {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("bench.strategies[%d]", i),
				Message: "strategy name cannot be empty",
			})
		}
	}

	for i, name := range c.Bench.Fixtures {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("bench.fixtures[%d]", i),
				Message: "fixture name cannot be empty",
			})
		}
	}

	return errors
}

func (c *Config) validateFixture(name string, f *FixtureConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("fixtures.%s", name)

	validShapes := map[string]bool{"acyclic": true, "tail-loop": true, "full-loop": true}
	if !validShapes[f.Shape] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".shape",
			Message: "shape must be 'acyclic', 'tail-loop', or 'full-loop'",
		})
	}

	if f.Length <= 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".length",
			Message: "length must be positive",
		})
	}

	switch f.Shape {
	case "tail-loop":
		if f.Length < 2 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".length",
				Message: "a tail loop needs at least 2 nodes",
			})
		} else if f.Entry < 1 || f.Entry >= f.Length {
			errors = append(errors, ValidationError{
				Field:   prefix + ".entry",
				Message: fmt.Sprintf("entry must be between 1 and %d for a tail loop", f.Length-1),
			})
		}
	case "acyclic", "full-loop":
		if f.Entry != 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".entry",
				Message: "entry is only meaningful for a tail loop",
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
