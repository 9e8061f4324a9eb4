package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPasswordSymbols is the punctuation set that satisfies the symbol requirement.
const DefaultPasswordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

const (
	PolicyStrict  = "strict"
	PolicyRelaxed = "relaxed"
)

// PasswordPolicy describes the password strength rules. Checks always run in
// the same order: length, uppercase, lowercase, digit, symbol.
type PasswordPolicy struct {
	Name      string
	MinLength int
	MaxLength int // 0 means unbounded
	Symbols   string
}

// StrictPasswordPolicy is the canonical rule set: at least 8 characters with
// upper and lower case letters, a digit and a symbol. Length is not capped.
func StrictPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Name:      PolicyStrict,
		MinLength: 8,
		Symbols:   DefaultPasswordSymbols,
	}
}

// RelaxedPasswordPolicy lowers the minimum length to 6. Character class
// requirements are the same as the strict policy.
func RelaxedPasswordPolicy() PasswordPolicy {
	p := StrictPasswordPolicy()
	p.Name = PolicyRelaxed
	p.MinLength = 6
	return p
}

// PasswordPolicyByName resolves a configured policy name.
func PasswordPolicyByName(name string) (PasswordPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyStrict:
		return StrictPasswordPolicy(), nil
	case PolicyRelaxed:
		return RelaxedPasswordPolicy(), nil
	default:
		return PasswordPolicy{}, fmt.Errorf("%w: %q", ErrUnknownPasswordPolicy, name)
	}
}

// CheckPassword evaluates value against the policy and returns the first
// failing requirement. ok is true when every requirement holds.
func CheckPassword(field, value string, policy PasswordPolicy) (ValidationError, bool) {
	symbols := policy.Symbols
	if symbols == "" {
		symbols = DefaultPasswordSymbols
	}

	length := utf8.RuneCountInString(value)
	if length < policy.MinLength {
		return passwordError(field, "validation.password_length",
			fmt.Sprintf("password must be at least %d characters", policy.MinLength),
			map[string]any{"field": field, "min": policy.MinLength}), false
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		return passwordError(field, "validation.password_max_length",
			fmt.Sprintf("password must be at most %d characters", policy.MaxLength),
			map[string]any{"field": field, "max": policy.MaxLength}), false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return passwordError(field, "validation.password_uppercase",
			"password must contain at least one uppercase letter", map[string]any{"field": field}), false
	case !hasLower:
		return passwordError(field, "validation.password_lowercase",
			"password must contain at least one lowercase letter", map[string]any{"field": field}), false
	case !hasDigit:
		return passwordError(field, "validation.password_digit",
			"password must contain at least one digit", map[string]any{"field": field}), false
	case !hasSymbol:
		return passwordError(field, "validation.password_symbol",
			"password must contain at least one symbol", map[string]any{"field": field, "symbols": symbols}), false
	}

	return ValidationError{}, true
}

// ValidPassword adapts CheckPassword into a Rule. The rule's error is the
// first failing requirement for value.
func ValidPassword(field, value string, policy PasswordPolicy) Rule {
	verr, ok := CheckPassword(field, value, policy)
	return Rule{
		Check: func() bool { return ok },
		Error: verr,
	}
}

func PasswordsMatch(field, password, confirmation string) Rule {
	return Rule{
		Check: func() bool {
			return password == confirmation
		},
		Error: ValidationError{
			Field:          field,
			Message:        "passwords do not match",
			TranslationKey: "validation.password_mismatch",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func passwordError(field, key, message string, values map[string]any) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
