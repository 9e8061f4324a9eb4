package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownPasswordPolicy is returned when a policy name does not match a known rule set.
	ErrUnknownPasswordPolicy = errors.New("unknown password policy")
)
