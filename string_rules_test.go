package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate"
)

func TestRequired(t *testing.T) {
	rule := validate.Required("email")

	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.True(t, rule.Check("test@example.com"))
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, rule.Check(""))
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, rule.Check("   "))
	})

	t.Run("passes for string with surrounding whitespace but content", func(t *testing.T) {
		assert.True(t, rule.Check("  John  "))
	})
}

func TestMinLen(t *testing.T) {
	rule := validate.MinLen("password", 5)

	t.Run("passes when string equals minimum length", func(t *testing.T) {
		assert.True(t, rule.Check("12345"))
		assert.Equal(t, "must be at least 5 characters long", rule.Error.Message)
	})

	t.Run("passes when string exceeds minimum length", func(t *testing.T) {
		assert.True(t, rule.Check("123456"))
	})

	t.Run("fails when string is shorter than minimum", func(t *testing.T) {
		assert.False(t, rule.Check("1234"))
	})

	t.Run("handles zero minimum length", func(t *testing.T) {
		assert.True(t, validate.MinLen("text", 0).Check(""))
	})
}

func TestMaxLen(t *testing.T) {
	rule := validate.MaxLen("username", 5)

	t.Run("passes when string equals maximum length", func(t *testing.T) {
		assert.True(t, rule.Check("12345"))
		assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
	})

	t.Run("fails when string exceeds maximum length", func(t *testing.T) {
		assert.False(t, rule.Check("123456"))
	})

	t.Run("passes empty string", func(t *testing.T) {
		assert.True(t, rule.Check(""))
	})
}

func TestLen(t *testing.T) {
	rule := validate.Len("code", 6)

	t.Run("passes for exact length", func(t *testing.T) {
		assert.True(t, rule.Check("123456"))
		assert.Equal(t, "must be exactly 6 characters long", rule.Error.Message)
	})

	t.Run("fails for shorter string", func(t *testing.T) {
		assert.False(t, rule.Check("12345"))
	})

	t.Run("fails for longer string", func(t *testing.T) {
		assert.False(t, rule.Check("1234567"))
	})
}

func TestHasPrefix(t *testing.T) {
	rule := validate.HasPrefix("key", "sk_")

	t.Run("passes with prefix", func(t *testing.T) {
		assert.True(t, rule.Check("sk_live_abc"))
	})

	t.Run("fails without prefix", func(t *testing.T) {
		assert.False(t, rule.Check("pk_live_abc"))
	})
}

func TestNoWhitespace(t *testing.T) {
	rule := validate.NoWhitespace("username")

	t.Run("passes without whitespace", func(t *testing.T) {
		assert.True(t, rule.Check("johndoe"))
	})

	t.Run("fails with space", func(t *testing.T) {
		assert.False(t, rule.Check("john doe"))
	})

	t.Run("fails with tab or newline", func(t *testing.T) {
		assert.False(t, rule.Check("john\tdoe"))
		assert.False(t, rule.Check("john\ndoe"))
	})
}
