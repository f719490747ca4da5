package validate

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// ValidEmail checks that a string is a valid email address using RFC 5322.
func ValidEmail(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Parse with Go's mail parser first
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURL checks that a string is a valid URL with a scheme and host.
func ValidURL(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// ValidURLWithScheme checks that a string is a valid URL with one of the given schemes.
func ValidURLWithScheme(field string, schemes []string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return slices.Contains(schemes, u.Scheme)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
		},
	}
}

// ValidPhone checks that a string is a valid international phone number.
// Accepts formats like +1234567890, +123456789012345 (E.164 format).
func ValidPhone(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			// Remove spaces and dashes for validation
			cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

			// Minimum valid phone number length
			if len(cleaned) < 7 {
				return false
			}

			return phoneRegex.MatchString(cleaned)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number in international format",
		},
	}
}

// ValidIPv4 checks that a string is a valid IPv4 address.
func ValidIPv4(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			ip := net.ParseIP(value)
			return ip != nil && ip.To4() != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv4 address",
		},
	}
}

// ValidIPv6 checks that a string is a valid IPv6 address.
func ValidIPv6(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			ip := net.ParseIP(value)
			if ip == nil {
				return false
			}
			// IPv6 addresses can include IPv4-mapped addresses
			return ip.To4() == nil || strings.Contains(value, ":")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv6 address",
		},
	}
}

// ValidIP checks that a string is a valid IP address (IPv4 or IPv6).
func ValidIP(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return net.ParseIP(value) != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IP address",
		},
	}
}

// ValidMAC checks that a string is a valid MAC address.
// Supports formats: AA:BB:CC:DD:EE:FF, AA-BB-CC-DD-EE-FF.
func ValidMAC(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			_, err := net.ParseMAC(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid MAC address",
		},
	}
}

// Alphanumeric checks that a string contains only letters and numbers.
func Alphanumeric(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return alphanumericRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and numbers",
		},
	}
}

// Alpha checks that a string contains only letters.
func Alpha(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return alphaRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters",
		},
	}
}

// NumericString checks that a string contains only digits.
func NumericString(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return numericStringRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only digits",
		},
	}
}
