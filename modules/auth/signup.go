package auth

import (
	"context"

	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/catalog"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/sanitizer"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

const (
	fullNameMinLen = 3
	fullNameMaxLen = 100
)

// RegisterRequest is the body of POST /api/auth/register/.
type RegisterRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
	City       string `json:"city"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignUpDefinition describes the registration form.
func SignUpDefinition(d Deps) form.Definition[RegisterResponse] {
	policy := d.policy()
	cities := d.cities()

	return form.Definition[RegisterResponse]{
		Name: "signup",
		Fields: []form.Field{
			{
				Name:  FieldFullName,
				Kind:  form.KindText,
				Label: "fields.full_name",
				Input: form.InputOptions{Dir: form.DirAuto, AutoComplete: "name"},
			},
			{
				Name:  FieldEmail,
				Kind:  form.KindEmail,
				Label: "fields.email",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "email"},
			},
			{
				Name:  FieldPhone,
				Kind:  form.KindPhone,
				Label: "fields.phone",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "tel", Numeric: true},
			},
			{
				Name:  FieldNationalID,
				Kind:  form.KindText,
				Label: "fields.national_id",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "off", Numeric: true},
			},
			{
				Name:  FieldPassword,
				Kind:  form.KindPassword,
				Label: "fields.password",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "new-password"},
			},
			{
				Name:  FieldPasswordConfirm,
				Kind:  form.KindPassword,
				Label: "fields.password_confirm",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "new-password"},
			},
			{
				Name:    FieldCity,
				Kind:    form.KindSelect,
				Label:   "fields.city",
				Choices: cities,
			},
			{
				Name:  FieldTerms,
				Kind:  form.KindToggle,
				Label: "fields.terms",
			},
		},
		Sanitize: func(v form.Values) form.Values {
			v[FieldFullName] = sanitizer.PlainText(v.String(FieldFullName))
			v[FieldEmail] = sanitizer.NormalizeEmail(v.String(FieldEmail))
			v[FieldPhone] = sanitizer.KeepDigits(v.String(FieldPhone))
			v[FieldNationalID] = sanitizer.KeepDigits(v.String(FieldNationalID))
			v[FieldCity] = sanitizer.Trim(v.String(FieldCity))
			return v
		},
		Validate: func(v form.Values) error {
			return validator.Apply(
				validator.Required(FieldFullName, v.String(FieldFullName)),
				validator.MinLen(FieldFullName, v.String(FieldFullName), fullNameMinLen),
				validator.MaxLen(FieldFullName, v.String(FieldFullName), fullNameMaxLen),
				validator.Required(FieldEmail, v.String(FieldEmail)),
				validator.ValidEmail(FieldEmail, v.String(FieldEmail)),
				validator.Required(FieldPhone, v.String(FieldPhone)),
				validator.ValidSaudiPhone(FieldPhone, v.String(FieldPhone)),
				validator.Required(FieldNationalID, v.String(FieldNationalID)),
				validator.ValidSaudiNationalID(FieldNationalID, v.String(FieldNationalID)),
				validator.Required(FieldPassword, v.String(FieldPassword)),
				validator.ValidPassword(FieldPassword, v.String(FieldPassword), policy),
				validator.Required(FieldPasswordConfirm, v.String(FieldPasswordConfirm)),
				validator.PasswordsMatch(FieldPasswordConfirm, v.String(FieldPassword), v.String(FieldPasswordConfirm)),
				validator.Required(FieldCity, v.String(FieldCity)),
				validator.InList(FieldCity, v.String(FieldCity), catalog.Values(cities)),
				validator.Accepted(FieldTerms, v.Bool(FieldTerms)),
			)
		},
		Submit: func(ctx context.Context, v form.Values) (RegisterResponse, error) {
			var resp RegisterResponse
			req := RegisterRequest{
				FullName:   v.String(FieldFullName),
				Email:      v.String(FieldEmail),
				Phone:      v.String(FieldPhone),
				NationalID: v.String(FieldNationalID),
				Password:   v.String(FieldPassword),
				City:       v.String(FieldCity),
			}
			err := d.API.PostJSON(ctx, RegisterPath, req, &resp)
			return resp, err
		},
		OnSuccess: func(ctx context.Context, _ RegisterResponse) {
			d.Notify(MessageSignUpSuccess)
			d.Navigate(ctx, navigation.RouteSignIn)
		},
	}
}

// NewSignUp creates a registration form controller.
func NewSignUp(d Deps, opts ...form.Option) (*form.Controller[RegisterResponse], error) {
	return form.New(SignUpDefinition(d), d.FormOptions(opts)...)
}
