package rules

import "regexp"

const emailTemplate = "The {attribute} must be a valid email address."

// Unanchored on purpose: the value passes as long as it contains an
// email-shaped substring.
var emailRegex = regexp.MustCompile(`[A-Za-z0-9+]+@[A-Za-z0-9]+\.[A-Za-z0-9]+`)

type emailRule struct{}

// Email validates that a value contains an email address of the form
// local@domain.tld, where local may include plus signs.
func Email() Rule { return emailRule{} }

func (emailRule) Evaluate(value string, _ ValueSource) Result {
	if emailRegex.MatchString(value) {
		return Pass()
	}
	return Fail(emailTemplate)
}
