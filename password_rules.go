package validate

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Common weak passwords - curated list of frequently compromised passwords
var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password12":  true,
	"password123": true,
	"password!":   true,
	"Password":    true,
	"Password1":   true,
	"Password123": true,
	"1234":        true,
	"12345":       true,
	"123456":      true,
	"1234567890":  true,
	"12345678":    true,
	"123456789":   true,
	"12341234":    true,
	"123123":      true,
	"111111":      true,
	"000000":      true,
	"654321":      true,
	"987654321":   true,
	"qwerty":      true,
	"qwerty1":     true,
	"qwerty12":    true,
	"qwerty123":   true,
	"qwertyuiop":  true,
	"asdfghjkl":   true,
	"zxcvbnm":     true,
	"1q2w3e4r":    true,
	"1qaz2wsx":    true,
	"zaq12wsx":    true,
	"qazwsx":      true,
	"123qwe":      true,
	"qwe123":      true,
	"asd123":      true,
	"zxc123":      true,
	"abc123":      true,
	"abcdef":      true,
	"abcd1234":    true,
	"a1b2c3":      true,
	"aa123456":    true,
	"admin":       true,
	"admin123":    true,
	"root":        true,
	"toor":        true,
	"guest":       true,
	"test":        true,
	"testing":     true,
	"user":        true,
	"login":       true,
	"pass":        true,
	"master":      true,
	"secret":      true,
	"letmein":     true,
	"welcome":     true,
	"trustno1":    true,
	"iloveyou":    true,
	"sunshine":    true,
	"princess":    true,
	"dragon":      true,
	"monkey":      true,
	"shadow":      true,
	"superman":    true,
	"batman":      true,
	"football":    true,
	"baseball":    true,
	"soccer":      true,
	"charlie":     true,
	"michael":     true,
	"jordan":      true,
	"hunter":      true,
	"freedom":     true,
	"computer":    true,
	"internet":    true,
	"google":      true,
	"facebook":    true,
	"windows":     true,
}

func hasUppercase(value string) bool {
	return strings.ContainsFunc(value, unicode.IsUpper)
}

func hasLowercase(value string) bool {
	return strings.ContainsFunc(value, unicode.IsLower)
}

func hasDigit(value string) bool {
	return strings.ContainsFunc(value, unicode.IsDigit)
}

func hasSpecialChar(value string) bool {
	return strings.ContainsAny(value, "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`")
}

func countCharClasses(value string) int {
	classes := 0
	for _, has := range []bool{hasUppercase(value), hasLowercase(value), hasDigit(value), hasSpecialChar(value)} {
		if has {
			classes++
		}
	}
	return classes
}

func PasswordUppercase(field string) Rule[string] {
	return Rule[string]{
		Check: hasUppercase,
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field string) Rule[string] {
	return Rule[string]{
		Check: hasLowercase,
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field string) Rule[string] {
	return Rule[string]{
		Check: hasDigit,
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one digit",
		},
	}
}

func PasswordSpecialChar(field string) Rule[string] {
	return Rule[string]{
		Check: hasSpecialChar,
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one special character",
		},
	}
}

// PasswordMixedCase checks that a password contains both lower and upper case
// letters.
func PasswordMixedCase(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return hasLowercase(value) && hasUppercase(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain both of lower and upper case",
		},
	}
}

// MinCharClasses checks that a password uses at least min of the four
// character classes (uppercase, lowercase, digits, special characters).
func MinCharClasses(field string, min int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return countCharClasses(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password must use at least %d different character types", min),
		},
	}
}

func NotCommonPassword(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Field:   field,
			Message: "password is too common, please choose a different one",
		},
	}
}

func NoRepeatingChars(field string, maxRepeats int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if len(value) == 0 {
				return true
			}

			currentChar := rune(0)
			count := 0
			maxCount := 0

			for _, char := range value {
				if char == currentChar {
					count++
				} else {
					if count > maxCount {
						maxCount = count
					}
					currentChar = char
					count = 1
				}
			}

			if count > maxCount {
				maxCount = count
			}

			return maxCount <= maxRepeats
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password cannot have more than %d repeating characters", maxRepeats),
		},
	}
}

// NoSequentialChars prevents patterns like "abc" or "123" that reduce
// effective entropy.
func NoSequentialChars(field string, maxSequential int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if len(value) <= maxSequential {
				return true
			}

			runes := []rune(value)
			sequentialCount := 1

			for i := 1; i < len(runes); i++ {
				if int(runes[i]) == int(runes[i-1])+1 || int(runes[i]) == int(runes[i-1])-1 {
					sequentialCount++
					if sequentialCount > maxSequential {
						return false
					}
				} else {
					sequentialCount = 1
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password cannot have more than %d sequential characters", maxSequential),
		},
	}
}

// PasswordEntropy checks password randomness using Shannon entropy.
// 50+ bits indicates strong randomness, 40-49 is moderate, <40 is weak.
func PasswordEntropy(field string, minEntropy float64) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return calculatePasswordEntropy(value) >= minEntropy
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password entropy too low, minimum %.1f bits required", minEntropy),
		},
	}
}

// PasswordPolicy describes password requirements. Its zero value requires
// nothing; use DefaultPasswordPolicy for a sensible baseline.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // Minimum number of different character classes required
	RejectCommon     bool
}

// DefaultPasswordPolicy returns NIST-recommended password requirements:
// 8-128 chars, 3+ character classes, common passwords rejected.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
		RejectCommon:     true,
	}
}

// Validator builds a validator with one rule per policy requirement, so a
// failing password reports every violated requirement, not just the first.
func (p PasswordPolicy) Validator(field string) *Validator[string] {
	v := New[string]()
	if p.MinLength > 0 {
		v.Rules(MinLen(field, p.MinLength))
	}
	if p.MaxLength > 0 {
		v.Rules(MaxLen(field, p.MaxLength))
	}
	if p.RequireUppercase {
		v.Rules(PasswordUppercase(field))
	}
	if p.RequireLowercase {
		v.Rules(PasswordLowercase(field))
	}
	if p.RequireDigits {
		v.Rules(PasswordDigit(field))
	}
	if p.RequireSpecial {
		v.Rules(PasswordSpecialChar(field))
	}
	if p.MinCharClasses > 0 {
		v.Rules(MinCharClasses(field, p.MinCharClasses))
	}
	if p.RejectCommon {
		v.Rules(NotCommonPassword(field))
	}
	return v
}

// StrongPassword collapses a whole policy into a single pass/fail rule for
// callers that want one aggregate message. Prefer PasswordPolicy.Validator
// when the caller should see each violated requirement separately.
func StrongPassword(field string, policy PasswordPolicy) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if len(value) < policy.MinLength || (policy.MaxLength > 0 && len(value) > policy.MaxLength) {
				return false
			}
			if policy.RequireUppercase && !hasUppercase(value) {
				return false
			}
			if policy.RequireLowercase && !hasLowercase(value) {
				return false
			}
			if policy.RequireDigits && !hasDigit(value) {
				return false
			}
			if policy.RequireSpecial && !hasSpecialChar(value) {
				return false
			}
			if policy.RejectCommon && commonPasswords[strings.ToLower(value)] {
				return false
			}
			return countCharClasses(value) >= policy.MinCharClasses
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password must be %d-%d characters with required character types", policy.MinLength, policy.MaxLength),
		},
	}
}

// calculatePasswordEntropy estimates password strength using Shannon entropy.
// Accounts for character set diversity and actual unique characters used.
func calculatePasswordEntropy(password string) float64 {
	if len(password) == 0 {
		return 0
	}

	uniqueChars := make(map[rune]bool)
	hasLower := false
	hasUpper := false
	hasDig := false
	hasSpecial := false

	for _, char := range password {
		uniqueChars[char] = true

		if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsDigit(char) {
			hasDig = true
		} else {
			hasSpecial = true
		}
	}

	// Estimate theoretical character set size
	charsetSize := 0
	if hasLower {
		charsetSize += 26
	}
	if hasUpper {
		charsetSize += 26
	}
	if hasDig {
		charsetSize += 10
	}
	if hasSpecial {
		charsetSize += 32 // Approximation for common special chars
	}

	if charsetSize == 0 {
		return 0
	}

	// Use actual unique chars but cap at theoretical max
	effectiveCharsetSize := float64(len(uniqueChars))
	if effectiveCharsetSize > float64(charsetSize) {
		effectiveCharsetSize = float64(charsetSize)
	}

	// Shannon entropy: length * log2(charset_size)
	return float64(len(password)) * math.Log2(effectiveCharsetSize)
}
