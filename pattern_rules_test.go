package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate"
)

func TestMatchesRegex(t *testing.T) {
	rule := validate.MatchesRegex("sku", `^[A-Z]{3}-\d{4}$`, "SKU")

	t.Run("passes for matching value", func(t *testing.T) {
		assert.True(t, rule.Check("ABC-1234"))
		assert.Equal(t, "must match SKU pattern", rule.Error.Message)
	})

	t.Run("fails for non-matching value", func(t *testing.T) {
		assert.False(t, rule.Check("abc-1234"))
	})

	t.Run("fails for empty value", func(t *testing.T) {
		assert.False(t, rule.Check(""))
		assert.False(t, rule.Check("   "))
	})

	t.Run("panics at construction for invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() {
			validate.MatchesRegex("sku", `([`, "broken")
		})
	})
}

func TestDoesNotMatchRegex(t *testing.T) {
	rule := validate.DoesNotMatchRegex("comment", `(?i)forbidden`, "forbidden word")

	t.Run("passes for clean value", func(t *testing.T) {
		assert.True(t, rule.Check("all good here"))
	})

	t.Run("passes for empty value", func(t *testing.T) {
		assert.True(t, rule.Check(""))
	})

	t.Run("fails when pattern matches", func(t *testing.T) {
		assert.False(t, rule.Check("this is FORBIDDEN content"))
		assert.Equal(t, "must not match forbidden word pattern", rule.Error.Message)
	})
}
