package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Saudi mobile numbers after digit projection: international (9665XXXXXXXX) or local (5XXXXXXXX).
	saudiPhoneRegex = regexp.MustCompile(`^(9665\d{8}|5\d{8})$`)
)

const nationalIDDigits = 10

// ValidEmail validates an email address with a deliberately loose check:
// after trimming, a non-empty local part, a single "@" and a domain with at
// least one dot and no empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsEmail reports whether value passes the loose email check used by ValidEmail.
func IsEmail(value string) bool {
	email := strings.TrimSpace(value)
	if email == "" || strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// ValidSaudiPhone validates a Saudi mobile number. All non-digit characters
// are dropped first, so "+966 50 123 4567" and "050-123-4567" are both judged
// on their digits alone.
func ValidSaudiPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsSaudiPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid Saudi mobile number",
			TranslationKey: "validation.saudi_phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsSaudiPhone reports whether the digit projection of value is 9665XXXXXXXX or 5XXXXXXXX.
func IsSaudiPhone(value string) bool {
	return saudiPhoneRegex.MatchString(Digits(value))
}

// ValidSaudiNationalID validates a Saudi national ID or iqama number: exactly
// ten digits once separators and masking characters are removed.
func ValidSaudiNationalID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsSaudiNationalID(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain exactly 10 digits",
			TranslationKey: "validation.national_id",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": nationalIDDigits,
			},
		},
	}
}

// IsSaudiNationalID reports whether value carries exactly ten digits.
func IsSaudiNationalID(value string) bool {
	return len(Digits(value)) == nationalIDDigits
}

// Digits returns the ASCII digit projection of value. Arabic-Indic and
// Extended Arabic-Indic digits are mapped to their ASCII equivalents; every
// other rune is dropped.
func Digits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if d, ok := arabicDigit(r); ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// arabicDigit maps ASCII, Arabic-Indic and Eastern Arabic-Indic digits to ASCII.
func arabicDigit(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r, true
	case r >= '\u0660' && r <= '\u0669':
		return '0' + (r - '\u0660'), true
	case r >= '\u06F0' && r <= '\u06F9':
		return '0' + (r - '\u06F0'), true
	}
	return 0, false
}
