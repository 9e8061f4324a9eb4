package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

func NumberBetween[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// IntStringBetween validates numeric text input (numeric input mode fields
// still deliver strings). Arabic-Indic digits are accepted.
func IntStringBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			digits := Digits(trimmed)
			if digits == "" || utf8.RuneCountInString(trimmed) != len(digits) {
				return false
			}
			n, err := strconv.Atoi(digits)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a number between %d and %d", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
