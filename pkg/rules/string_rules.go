package rules

import "github.com/dmitrymomot/formkit/pkg/templater"

const (
	requiredTemplate      = "The {attribute} field is required."
	minLengthTemplate     = "The {attribute} must be at least {min} characters."
	maxLengthTemplate     = "The {attribute} must not be greater than {max} characters"
	betweenLengthTemplate = "The {attribute} must be between {min} and {max} characters."
)

type requiredRule struct{}

// Required validates that a value is not empty.
func Required() Rule { return requiredRule{} }

func (requiredRule) Evaluate(value string, _ ValueSource) Result {
	if len(value) > 0 {
		return Pass()
	}
	return Fail(requiredTemplate)
}

type minLengthRule struct {
	min      int
	template string
}

// MinLength validates that a value has at least min characters.
func MinLength(min int) Rule {
	return minLengthRule{
		min:      min,
		template: templater.Render(minLengthTemplate, templater.Values{"min": min}, false),
	}
}

func (r minLengthRule) Evaluate(value string, _ ValueSource) Result {
	if len(value) >= r.min {
		return Pass()
	}
	return Fail(r.template)
}

type maxLengthRule struct {
	max      int
	template string
}

// MaxLength validates that a value has at most max characters.
func MaxLength(max int) Rule {
	return maxLengthRule{
		max:      max,
		template: templater.Render(maxLengthTemplate, templater.Values{"max": max}, false),
	}
}

func (r maxLengthRule) Evaluate(value string, _ ValueSource) Result {
	if len(value) <= r.max {
		return Pass()
	}
	return Fail(r.template)
}

type betweenLengthRule struct {
	min      int
	max      int
	template string
}

// BetweenLength validates that a value's length falls within [min, max]
// inclusive.
func BetweenLength(min, max int) Rule {
	return betweenLengthRule{
		min:      min,
		max:      max,
		template: templater.Render(betweenLengthTemplate, templater.Values{"min": min, "max": max}, false),
	}
}

func (r betweenLengthRule) Evaluate(value string, _ ValueSource) Result {
	if len(value) >= r.min && len(value) <= r.max {
		return Pass()
	}
	return Fail(r.template)
}
