package validate

import (
	"fmt"
	"strings"
)

// RequiredComparable checks that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string) Rule[T] {
	var zero T
	return Rule[T]{
		Check: func(value T) bool {
			return value != zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// EqualTo checks that a value equals the expected one.
func EqualTo[T comparable](field string, want T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value == want
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must equal %v", want),
		},
	}
}

func InList[T comparable](field string, allowedValues []T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

func NotInList[T comparable](field string, forbiddenValues []T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			for _, forbidden := range forbiddenValues {
				if value == forbidden {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not be one of: %v", forbiddenValues),
		},
	}
}

func InListCaseInsensitive(field string, allowedValues []string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			lowerValue := strings.ToLower(value)
			for _, allowed := range allowedValues {
				if lowerValue == strings.ToLower(allowed) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(allowedValues, ", ")),
		},
	}
}

func NotInListCaseInsensitive(field string, forbiddenValues []string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			lowerValue := strings.ToLower(value)
			for _, forbidden := range forbiddenValues {
				if lowerValue == strings.ToLower(forbidden) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not be one of (case-insensitive): %s", strings.Join(forbiddenValues, ", ")),
		},
	}
}

// Semantic aliases for choice validation

func OneOf[T comparable](field string, options []T) Rule[T] {
	return InList(field, options)
}

func NoneOf[T comparable](field string, options []T) Rule[T] {
	return NotInList(field, options)
}
