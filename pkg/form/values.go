package form

import "net/url"

// Values adapts url.Values to the engine's value lookup contract, so parsed
// HTML form data plugs in directly. Absent fields read as empty strings.
type Values url.Values

// Value returns the first value for the named field, empty if absent.
func (v Values) Value(field string) string {
	return url.Values(v).Get(field)
}
