// Package rules provides the validation rules applied to individual form
// field values.
//
// Each rule is a small value implementing the Rule interface, built by a
// factory function that captures its parameters:
//
//	rules.Required()
//	rules.MinLength(8)
//	rules.Confirmation("password")
//
// Rules are stateless and goroutine-safe once constructed. Evaluate returns
// a Result that is either passing or failing with a message template;
// rule-specific parameters such as {min} are already substituted into the
// template, while the {attribute} placeholder is left for the engine to
// resolve against the field's display name.
//
// Relational rules such as Confirmation read the referenced field through
// the ValueSource passed to Evaluate, so they always compare against the
// value current at evaluation time. They additionally implement Referencer,
// which lets a registry verify at construction time that the referenced
// field exists.
package rules
