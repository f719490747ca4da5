package validate

import "fmt"

func RequiredSlice[T any](field string) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MinItems[T any](field string, min int) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at least %d items", min),
		},
	}
}

func MaxItems[T any](field string, max int) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d items", max),
		},
	}
}

// UniqueItems checks that a slice contains no duplicate elements.
func UniqueItems[T comparable](field string) Rule[[]T] {
	return Rule[[]T]{
		Check: func(value []T) bool {
			seen := make(map[T]bool, len(value))
			for _, item := range value {
				if seen[item] {
					return false
				}
				seen[item] = true
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain duplicate items",
		},
	}
}

func RequiredMap[K comparable, V any](field string) Rule[map[K]V] {
	return Rule[map[K]V]{
		Check: func(value map[K]V) bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MinLenMap[K comparable, V any](field string, min int) Rule[map[K]V] {
	return Rule[map[K]V]{
		Check: func(value map[K]V) bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at least %d items", min),
		},
	}
}

func MaxLenMap[K comparable, V any](field string, max int) Rule[map[K]V] {
	return Rule[map[K]V]{
		Check: func(value map[K]V) bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d items", max),
		},
	}
}
