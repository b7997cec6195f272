package rules

// Result is the outcome of evaluating a single rule against a field value.
// It is either passing, or failing with a message template that may still
// contain an {attribute} placeholder for the caller to resolve.
type Result struct {
	ok       bool
	template string
}

// Pass returns a passing result.
func Pass() Result { return Result{ok: true} }

// Fail returns a failing result carrying the message template to display.
func Fail(template string) Result { return Result{template: template} }

// OK reports whether the rule passed.
func (r Result) OK() bool { return r.ok }

// Template returns the failure message template, empty for passing results.
func (r Result) Template() string { return r.template }

// ValueSource provides live access to current field values. Implementations
// must return the value as it is at call time; rules never cache it.
type ValueSource interface {
	Value(field string) string
}

// Rule validates a single field value. Rules are stateless once constructed
// and must be total: they return a Result for any input string and never
// panic. The values source is provided at evaluation time so relational
// rules always see current data.
type Rule interface {
	Evaluate(value string, values ValueSource) Result
}

// Referencer is implemented by rules that read another field's value at
// evaluation time. Registries use it to reject references to fields that
// do not exist.
type Referencer interface {
	References() string
}
