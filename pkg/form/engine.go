package form

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/templater"
)

// Display receives per-field error visibility updates during a validation
// pass. Showing an empty message is equivalent to hiding.
type Display interface {
	ShowError(field, message string)
	HideError(field string)
	HideAllErrors()
}

// Engine runs a registry's rules against live field values and drives error
// display. A single Validate call is one synchronous pass over every
// registered field; values are re-read fresh on each rule evaluation.
type Engine struct {
	registry *Registry
	values   rules.ValueSource
	display  Display
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger enables debug logging of validation passes. Nil loggers are
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an engine over the given registry, value source, and display.
func New(registry *Registry, values rules.ValueSource, display Display, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		values:   values,
		display:  display,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // noop logger by default
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs every field's rules in order and reports whether the whole
// form is valid.
//
// For each field, rules run left to right against the field's current value.
// A passing rule clears the field's error and evaluation continues; the
// first failing rule marks the form invalid, displays its finalized message,
// and ends evaluation for that field. Remaining fields are still checked, so
// every invalid field shows exactly one message per pass.
func (e *Engine) Validate() bool {
	valid := true

	for _, field := range e.registry.Fields() {
		for _, rule := range field.Rules {
			value := e.values.Value(field.Name)

			res := rule.Evaluate(value, e.values)
			if res.OK() {
				e.display.HideError(field.Name)
				continue
			}

			valid = false
			message := templater.Render(res.Template(), templater.Values{"attribute": field.displayName()}, true)
			e.display.ShowError(field.Name, message)
			e.logger.Debug("field failed validation", "field", field.Name, "message", message)
			break
		}
	}

	e.logger.Debug("validation pass finished", "valid", valid, "fields", e.registry.Len())
	return valid
}
