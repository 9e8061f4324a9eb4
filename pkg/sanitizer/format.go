package sanitizer

import (
	"strings"
)

// NormalizeEmail trims the address and lowercases it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDigits maps Arabic-Indic and Extended Arabic-Indic digits to ASCII
// and leaves every other rune untouched.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// KeepDigits returns only the digits of s, normalizing Arabic-Indic digits first.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, NormalizeDigits(s))
}

// FormatSaudiPhone renders a Saudi mobile number for display as "05X XXX XXXX".
// The 966 country code is dropped here, not during validation. Inputs that are
// not Saudi mobile numbers are returned as their digits.
func FormatSaudiPhone(phone string) string {
	digits := KeepDigits(phone)
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "9665"):
		digits = "0" + digits[3:]
	case len(digits) == 9 && strings.HasPrefix(digits, "5"):
		digits = "0" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "05"):
	default:
		return digits
	}
	return digits[:3] + " " + digits[3:6] + " " + digits[6:]
}

// MaskNationalID shows the first and last two digits of a national ID and
// masks the rest, e.g. "10******89". Values that are not ten digits are fully masked.
func MaskNationalID(id string) string {
	digits := KeepDigits(id)
	if len(digits) != 10 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:2] + strings.Repeat("*", 6) + digits[8:]
}
