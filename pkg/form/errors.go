package form

import "errors"

var (
	ErrInvalidDefinition = errors.New("invalid form definition")
	ErrUnknownField      = errors.New("unknown form field")
	ErrInvalidValue      = errors.New("invalid value for field kind")
	ErrUnknownOption     = errors.New("option is not offered by field")
	ErrEmptyTag          = errors.New("tag is empty")
	ErrTooManyItems      = errors.New("field already holds the maximum number of items")
	ErrSubmitting        = errors.New("form submission already in progress")
	ErrClosed            = errors.New("form controller is closed")
	ErrSubmitFailed      = errors.New("form submission failed")
)

// Rejection is implemented by errors that represent a server-side refusal
// (a non-2xx response) as opposed to a transport failure.
type Rejection interface {
	error
	// Detail returns the server-provided message, or "" when none was sent.
	Detail() string
	// FieldErrors returns server messages keyed by form field.
	FieldErrors() map[string]string
}

// AsRejection extracts a Rejection from err.
func AsRejection(err error) (Rejection, bool) {
	var rej Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
