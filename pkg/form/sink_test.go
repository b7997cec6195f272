package form_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestErrors(t *testing.T) {
	t.Run("show replaces the previous message", func(t *testing.T) {
		e := form.NewErrors()
		e.ShowError("email", "first")
		e.ShowError("email", "second")
		assert.Equal(t, "second", e.Get("email"))
		assert.True(t, e.Has("email"))
	})

	t.Run("show with empty message clears the field", func(t *testing.T) {
		e := form.NewErrors()
		e.ShowError("email", "bad")
		e.ShowError("email", "")
		assert.False(t, e.Has("email"))
		assert.True(t, e.IsEmpty())
	})

	t.Run("hide clears a single field", func(t *testing.T) {
		e := form.NewErrors()
		e.ShowError("email", "bad")
		e.ShowError("name", "missing")
		e.HideError("email")
		assert.False(t, e.Has("email"))
		assert.True(t, e.Has("name"))
	})

	t.Run("hide all clears every field", func(t *testing.T) {
		e := form.NewErrors()
		e.ShowError("email", "bad")
		e.ShowError("name", "missing")
		e.HideAllErrors()
		assert.True(t, e.IsEmpty())
		assert.Empty(t, e.Fields())
	})

	t.Run("fields are sorted", func(t *testing.T) {
		e := form.NewErrors()
		e.ShowError("b", "x")
		e.ShowError("a", "y")
		e.ShowError("c", "z")
		assert.Equal(t, []string{"a", "b", "c"}, e.Fields())
	})

	t.Run("get on unknown field is empty", func(t *testing.T) {
		e := form.NewErrors()
		assert.Equal(t, "", e.Get("missing"))
		assert.False(t, e.Has("missing"))
	})

	t.Run("error summarizes all failures", func(t *testing.T) {
		e := form.NewErrors()
		assert.Equal(t, "validation failed", e.Error())

		e.ShowError("email", "must be valid")
		e.ShowError("name", "is required")
		assert.Equal(t, "validation failed: email: must be valid; name: is required", e.Error())
	})
}

func TestValues(t *testing.T) {
	t.Run("returns the first value for a field", func(t *testing.T) {
		v := form.Values(url.Values{"tags": {"a", "b"}})
		assert.Equal(t, "a", v.Value("tags"))
	})

	t.Run("returns empty for absent fields", func(t *testing.T) {
		v := form.Values(url.Values{})
		assert.Equal(t, "", v.Value("missing"))
	})
}
