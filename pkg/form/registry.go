package form

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Field binds an ordered rule set to a named form field. Rules run
// left to right; the first failure wins and later rules are skipped.
type Field struct {
	Name  string
	Label string // optional display name used in messages; defaults to Name
	Rules []rules.Rule
}

// displayName is the value substituted for {attribute} in messages.
func (f Field) displayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Registry is the single source of truth for which rules apply to which
// field and in what order. It is built once, validated eagerly, and
// immutable afterward; fields are visited in registration order.
type Registry struct {
	fields []Field
}

// NewRegistry validates and freezes the given fields. It fails fast on
// unnamed or duplicate fields and on rules referencing fields that are not
// registered, so misconfiguration surfaces at startup rather than during a
// validation pass.
func NewRegistry(fields ...Field) (*Registry, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	for _, f := range fields {
		for _, r := range f.Rules {
			ref, ok := r.(rules.Referencer)
			if !ok {
				continue
			}
			if _, exists := seen[ref.References()]; !exists {
				return nil, fmt.Errorf("%w: %q references %q", ErrUnknownReference, f.Name, ref.References())
			}
		}
	}

	frozen := make([]Field, len(fields))
	copy(frozen, fields)
	return &Registry{fields: frozen}, nil
}

// MustNewRegistry is like NewRegistry but panics on error. Intended for
// registries built from literals at process start.
func MustNewRegistry(fields ...Field) *Registry {
	r, err := NewRegistry(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// Fields returns the registered fields in registration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) Fields() []Field { return r.fields }

// Len returns the number of registered fields.
func (r *Registry) Len() int { return len(r.fields) }
