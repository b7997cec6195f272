package form

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Errors collects the currently visible error message per field.
// It's based on url.Values to leverage built-in string slice handling and
// implements Display, so it can back a validation pass directly and be
// inspected afterward.
type Errors url.Values

// NewErrors returns an empty error collection.
func NewErrors() Errors {
	return make(Errors)
}

// ShowError records message as the visible error for field, replacing any
// previous one. An empty message clears the field instead.
func (e Errors) ShowError(field, message string) {
	if message == "" {
		url.Values(e).Del(field)
		return
	}
	url.Values(e).Set(field, message)
}

// HideError clears the visible error for field.
func (e Errors) HideError(field string) {
	url.Values(e).Del(field)
}

// HideAllErrors clears every field's error.
func (e Errors) HideAllErrors() {
	for field := range e {
		delete(e, field)
	}
}

// Get returns the visible error message for a field, empty if none.
func (e Errors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field currently has a visible error.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if no field has a visible error.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the names of fields with visible errors, sorted for
// deterministic iteration.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Error implements the error interface with a human-readable summary of all
// visible field errors.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
