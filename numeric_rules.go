package validate

import "fmt"

// RequiredNum checks that a numeric value is not zero.
func RequiredNum[T Numeric](field string) Rule[T] {
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

// Min checks that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, min T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// Max checks that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, max T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// Between checks that a numeric value falls within the inclusive range.
func Between[T Numeric](field string, min, max T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// Positive checks that a numeric value is strictly greater than zero.
func Positive[T Numeric](field string) Rule[T] {
	var zero T
	return Rule[T]{
		Check: func(value T) bool {
			return value > zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be positive",
		},
	}
}
