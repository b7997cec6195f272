package form

import "errors"

var (
	// ErrEmptyFieldName is returned when a field is registered without a name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two fields are registered under the same name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownReference is returned when a rule references a field that is not registered.
	ErrUnknownReference = errors.New("rule references unregistered field")
)
