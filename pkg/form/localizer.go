package form

import "github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"

// Message keys for form-level errors.
const (
	MessageSubmitFailed = "form.submit_failed"
	MessageUnexpected   = "form.unexpected_error"
)

// Localizer turns validation errors and message keys into user-facing text.
type Localizer interface {
	FieldError(verr validator.ValidationError) string
	Message(key string) string
}

type defaultLocalizer struct{}

func (defaultLocalizer) FieldError(verr validator.ValidationError) string {
	return verr.Message
}

func (defaultLocalizer) Message(key string) string {
	switch key {
	case MessageSubmitFailed:
		return "submission failed, please try again"
	case MessageUnexpected:
		return "an unexpected error occurred, please try again"
	}
	return key
}
