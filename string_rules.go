package validate

import (
	"fmt"
	"strings"
)

// Required checks that a string is not empty after trimming whitespace.
func Required(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MinLen(field string, min int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func MaxLen(field string, max int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

func Len(field string, exact int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d characters long", exact),
		},
	}
}

// HasPrefix checks that a string starts with the given prefix.
func HasPrefix(field, prefix string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must start with %q", prefix),
		},
	}
}

// NoWhitespace checks that a string contains no whitespace characters.
func NoWhitespace(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return !strings.ContainsAny(value, " \t\n\r")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain whitespace",
		},
	}
}
