package auth

import (
	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/catalog"
	"github.com/RafeefAlsuhaibani/takaful-sub001/internal/modkit"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/session"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

const (
	LoginPath    = "/api/auth/login/"
	RegisterPath = "/api/auth/register/"

	MessageSignUpSuccess = "toast.signup_success"
)

// Field names double as JSON keys of the request bodies.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldFullName        = "full_name"
	FieldPhone           = "phone"
	FieldNationalID      = "national_id"
	FieldCity            = "city"
	FieldTerms           = "terms"
)

// Deps are the collaborators of the auth forms.
type Deps struct {
	modkit.Base
	Session *session.Session

	// PasswordPolicy applies at sign-up. The zero value means strict.
	PasswordPolicy validator.PasswordPolicy
	Cities         []form.Choice
}

func (d Deps) policy() validator.PasswordPolicy {
	if d.PasswordPolicy.MinLength == 0 {
		return validator.StrictPasswordPolicy()
	}
	return d.PasswordPolicy
}

func (d Deps) cities() []form.Choice {
	if len(d.Cities) == 0 {
		return catalog.Cities()
	}
	return d.Cities
}
