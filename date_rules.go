package validate

import (
	"fmt"
	"time"
)

func PastDate(field string) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			return value.Before(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the past",
		},
	}
}

func FutureDate(field string) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			return value.After(time.Now())
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be in the future",
		},
	}
}

func DateAfter(field string, after time.Time) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			return value.After(after)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be after %s", after.Format("2006-01-02")),
		},
	}
}

func DateBefore(field string, before time.Time) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			return value.Before(before)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be before %s", before.Format("2006-01-02")),
		},
	}
}

func DateBetween(field string, start, end time.Time) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			return (value.Equal(start) || value.After(start)) && (value.Equal(end) || value.Before(end))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be between %s and %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		},
	}
}

// MinAge checks minimum age by calculating years elapsed, accounting for
// whether the birthday has occurred this year.
func MinAge(field string, minAge int) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(birthdate time.Time) bool {
			now := time.Now()
			age := now.Year() - birthdate.Year()

			if now.Month() < birthdate.Month() ||
				(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
				age--
			}

			return age >= minAge
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("minimum age of %d years required", minAge),
		},
	}
}

// ValidBirthdate ensures reasonable birthdate constraints: not in the future,
// not older than 150 years.
func ValidBirthdate(field string) Rule[time.Time] {
	return Rule[time.Time]{
		Check: func(value time.Time) bool {
			now := time.Now()
			if value.After(now) {
				return false
			}
			return value.After(now.AddDate(-150, 0, 0))
		},
		Error: ValidationError{
			Field:   field,
			Message: "birthdate must be a valid date not in the future and not more than 150 years ago",
		},
	}
}
