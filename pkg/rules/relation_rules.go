package rules

const confirmationTemplate = "The {attribute} confirmation does not match."

type confirmationRule struct {
	original string
}

// Confirmation validates that a value matches the current value of the
// original field, e.g. a password confirmation input against the password
// input. The original value is re-read from the values source on every
// evaluation, never cached.
func Confirmation(original string) Rule {
	return confirmationRule{original: original}
}

func (r confirmationRule) Evaluate(value string, values ValueSource) Result {
	if value == values.Value(r.original) {
		return Pass()
	}
	return Fail(confirmationTemplate)
}

func (r confirmationRule) References() string { return r.original }
