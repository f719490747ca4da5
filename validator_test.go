package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
)

func TestValidatorNoRules(t *testing.T) {
	v := validate.New[string]()

	assert.NoError(t, v.Validate(""))
	assert.NoError(t, v.Validate("anything"))
}

func TestValidatorAllRulesPass(t *testing.T) {
	v := validate.New[string]().
		AddRule(func(s string) bool { return len(s) > 3 }, "too short").
		AddRule(func(s string) bool { return strings.ContainsAny(s, "0123456789") }, "needs digit")

	err := v.Validate("abcd1")

	assert.NoError(t, err)
	assert.Nil(t, validate.ExtractValidationErrors(err))
}

func TestValidatorSingleFailure(t *testing.T) {
	v := validate.New[string]().
		AddRule(func(s string) bool { return len(s) > 3 }, "too short").
		AddRule(func(s string) bool { return strings.ContainsAny(s, "0123456789") }, "needs digit")

	err := v.Validate("ab1")

	require.Error(t, err)
	verrs := validate.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, []string{"too short"}, verrs.Messages())
}

func TestValidatorCollectsAllFailures(t *testing.T) {
	t.Run("reports failures in registration order", func(t *testing.T) {
		v := validate.New[string]().
			AddRule(func(s string) bool { return len(s) > 8 }, "too short").
			AddRule(func(s string) bool { return strings.ContainsAny(s, "0123456789") }, "needs digit")

		err := v.Validate("abc")

		require.Error(t, err)
		assert.Equal(t, []string{"too short", "needs digit"}, validate.ExtractValidationErrors(err).Messages())
	})

	t.Run("passing rules interspersed between failures do not affect order", func(t *testing.T) {
		v := validate.New[string]().
			AddRule(func(s string) bool { return false }, "first").
			AddRule(func(s string) bool { return true }, "never").
			AddRule(func(s string) bool { return false }, "second").
			AddRule(func(s string) bool { return true }, "never either").
			AddRule(func(s string) bool { return false }, "third")

		err := v.Validate("whatever")

		require.Error(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, validate.ExtractValidationErrors(err).Messages())
	})

	t.Run("only middle rule fails", func(t *testing.T) {
		v := validate.New[string]().
			AddRule(func(s string) bool { return true }, "first").
			AddRule(func(s string) bool { return false }, "middle").
			AddRule(func(s string) bool { return true }, "last")

		err := v.Validate("x")

		require.Error(t, err)
		assert.Equal(t, []string{"middle"}, validate.ExtractValidationErrors(err).Messages())
	})
}

func TestValidatorNoShortCircuit(t *testing.T) {
	evaluated := make([]string, 0, 3)
	v := validate.New[string]().
		AddRule(func(s string) bool { evaluated = append(evaluated, "a"); return false }, "a failed").
		AddRule(func(s string) bool { evaluated = append(evaluated, "b"); return false }, "b failed").
		AddRule(func(s string) bool { evaluated = append(evaluated, "c"); return true }, "c failed")

	err := v.Validate("x")

	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, evaluated, "every rule must run even after a failure")
}

func TestValidatorIdempotence(t *testing.T) {
	v := validate.New[string]().
		AddRule(func(s string) bool { return len(s) > 8 }, "too short").
		AddRule(func(s string) bool { return strings.ContainsAny(s, "0123456789") }, "needs digit")

	first := v.Validate("abc")
	second := v.Validate("abc")

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t,
		validate.ExtractValidationErrors(first),
		validate.ExtractValidationErrors(second),
	)
}

func TestValidatorOrderIndependenceOfEffect(t *testing.T) {
	tooShort := func(s string) bool { return len(s) > 8 }
	hasDigit := func(s string) bool { return strings.ContainsAny(s, "0123456789") }

	forward := validate.New[string]().
		AddRule(tooShort, "too short").
		AddRule(hasDigit, "needs digit")
	reversed := validate.New[string]().
		AddRule(hasDigit, "needs digit").
		AddRule(tooShort, "too short")

	for _, input := range []string{"abc", "abcdefgh1", "123456789", "abcdefghij"} {
		forwardErr := forward.Validate(input)
		reversedErr := reversed.Validate(input)

		assert.Equal(t, forwardErr == nil, reversedErr == nil,
			"registration order must not change whether %q validates", input)
	}

	err := reversed.Validate("abc")
	require.Error(t, err)
	assert.Equal(t, []string{"needs digit", "too short"}, validate.ExtractValidationErrors(err).Messages())
}

func TestValidatorFluentChaining(t *testing.T) {
	v := validate.New[string]()
	returned := v.AddRule(func(s string) bool { return true }, "never")

	assert.Same(t, v, returned)

	returned = v.Rules(validate.MinLen("field", 1))
	assert.Same(t, v, returned)
}

func TestValidatorPasswordScenarios(t *testing.T) {
	newValidator := func() *validate.Validator[string] {
		return validate.New[string]().
			AddRule(func(s string) bool { return len(s) > 8 }, "too short").
			AddRule(func(s string) bool { return strings.ContainsAny(s, "0123456789") }, "needs digit")
	}

	t.Run("both rules fail", func(t *testing.T) {
		err := newValidator().Validate("abc")

		require.Error(t, err)
		assert.Equal(t, []string{"too short", "needs digit"}, validate.ExtractValidationErrors(err).Messages())
	})

	t.Run("both rules pass", func(t *testing.T) {
		assert.NoError(t, newValidator().Validate("abcdefgh1"))
	})

	t.Run("length boundary is exclusive", func(t *testing.T) {
		v := validate.New[string]().
			AddRule(func(s string) bool { return len(s) > 8 }, "too short")

		assert.NoError(t, v.Validate("123456789"))
		require.Error(t, v.Validate("12345678"))
	})
}

func TestValidatorPredicatePanicPropagates(t *testing.T) {
	v := validate.New[string]().
		AddRule(func(s string) bool { panic("broken rule") }, "never reported")

	assert.PanicsWithValue(t, "broken rule", func() {
		_ = v.Validate("x")
	})
}

func TestValidatorEmptyMessageAccepted(t *testing.T) {
	v := validate.New[string]().
		AddRule(func(s string) bool { return false }, "")

	err := v.Validate("x")

	require.Error(t, err)
	assert.Equal(t, []string{""}, validate.ExtractValidationErrors(err).Messages())
}

func TestApply(t *testing.T) {
	t.Run("no rules succeeds", func(t *testing.T) {
		assert.NoError(t, validate.Apply("anything"))
	})

	t.Run("aggregates failures from prebuilt rules", func(t *testing.T) {
		err := validate.Apply("ab",
			validate.MinLen("password", 8),
			validate.PasswordDigit("password"),
			validate.PasswordLowercase("password"),
		)

		require.Error(t, err)
		verrs := validate.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("password"))
		assert.Equal(t, []string{
			"must be at least 8 characters long",
			"password must contain at least one digit",
		}, verrs.Messages())
	})
}

func TestOn(t *testing.T) {
	type form struct {
		Email    string
		Password string
	}

	v := validate.New[form]().Rules(
		validate.On(func(f form) string { return f.Email }, validate.ValidEmail("email")),
		validate.On(func(f form) string { return f.Password }, validate.MinLen("password", 8)),
	)

	t.Run("valid form passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(form{Email: "user@example.com", Password: "longenough"}))
	})

	t.Run("lifted rules keep their own error metadata", func(t *testing.T) {
		err := v.Validate(form{Email: "not-an-email", Password: "short"})

		require.Error(t, err)
		verrs := validate.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("password"))
	})
}
