package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex checks against a custom pattern. The pattern is compiled once
// at rule construction; an invalid pattern panics there, not at Validate time.
func MatchesRegex(field, pattern, description string) Rule[string] {
	regex := regexp.MustCompile(pattern)
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}

func DoesNotMatchRegex(field, pattern, description string) Rule[string] {
	regex := regexp.MustCompile(pattern)
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			return !regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not match %s pattern", description),
		},
	}
}
