// Package validator provides the client-side validation rules used by the
// Takaful forms: email, password strength, Saudi mobile numbers and Saudi
// national IDs, plus a handful of generic string, choice and collection rules.
//
// Every exported rule constructor returns a Rule that pairs a boolean Check
// with a translation-friendly ValidationError. Rules are evaluated with Apply,
// which collects every failure into ValidationErrors. Forms show one message
// per field, so callers usually reduce the result with FirstPerField.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.ValidPassword("password", password, validator.StrictPasswordPolicy()),
//	    validator.ValidSaudiPhone("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs.FirstPerField() {
//	        // e.Field, e.TranslationKey
//	    }
//	}
//
// # Rule sets
//
// Password strength is configured by PasswordPolicy. StrictPasswordPolicy is
// the canonical rule set (8 characters minimum); RelaxedPasswordPolicy lowers
// the minimum to 6 and must be selected explicitly with PasswordPolicyByName.
//
// All rules are pure functions of their input. Empty or whitespace-only
// values are treated as invalid by every format rule, and no rule panics.
package validator
