package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestConfirmation(t *testing.T) {
	rule := rules.Confirmation("password")

	t.Run("passes when values match", func(t *testing.T) {
		src := mapSource{"password": "s3cret"}
		assert.True(t, rule.Evaluate("s3cret", src).OK())
	})

	t.Run("fails when values differ", func(t *testing.T) {
		src := mapSource{"password": "s3cret"}
		res := rule.Evaluate("other", src)
		assert.False(t, res.OK())
		assert.Equal(t, "The {attribute} confirmation does not match.", res.Template())
	})

	t.Run("re-reads the original field on every evaluation", func(t *testing.T) {
		src := mapSource{"password": "first"}
		assert.True(t, rule.Evaluate("first", src).OK())

		src["password"] = "second"
		assert.False(t, rule.Evaluate("first", src).OK())
		assert.True(t, rule.Evaluate("second", src).OK())
	})

	t.Run("passes when both values are empty", func(t *testing.T) {
		assert.True(t, rule.Evaluate("", mapSource{}).OK())
	})

	t.Run("exposes the referenced field", func(t *testing.T) {
		ref, ok := rule.(rules.Referencer)
		require.True(t, ok)
		assert.Equal(t, "password", ref.References())
	})
}
