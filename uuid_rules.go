package validate

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID checks standard UUID format with pre-validation to avoid
// expensive parsing.
func ValidUUID(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid UUID",
		},
	}
}

func NonNilUUID(field string) Rule[uuid.UUID] {
	return Rule[uuid.UUID]{
		Check: func(value uuid.UUID) bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "UUID cannot be nil",
		},
	}
}

func NonNilUUIDString(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			parsedUUID, err := uuid.Parse(value)
			if err != nil {
				return false
			}
			return parsedUUID != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "UUID cannot be nil",
		},
	}
}
