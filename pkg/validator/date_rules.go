package validator

import (
	"strings"
	"time"
)

// DateLayout is the wire format of date inputs.
const DateLayout = time.DateOnly

// ValidDate checks that value is a calendar date in YYYY-MM-DD form.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date (YYYY-MM-DD)",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateNotBefore checks that value is a date on or after the calendar day of
// earliest. Unparseable values fail.
func DateNotBefore(field, value string, earliest time.Time) Rule {
	floor := earliest.Format(DateLayout)
	return Rule{
		Check: func() bool {
			d, ok := ParseDate(value)
			return ok && d.Format(DateLayout) >= floor
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be before " + floor,
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field": field,
				"date":  floor,
			},
		},
	}
}

// ParseDate parses a YYYY-MM-DD date after trimming and normalizing
// Arabic-Indic digits.
func ParseDate(value string) (time.Time, bool) {
	s := strings.Map(func(r rune) rune {
		if d, ok := arabicDigit(r); ok {
			return d
		}
		return r
	}, strings.TrimSpace(value))
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	return d, err == nil
}
