package auth

import (
	"context"
	"fmt"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/sanitizer"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/session"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

// LoginRequest is the body of POST /api/auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    *session.User `json:"user,omitempty"`
}

// SignInDefinition describes the sign-in form. The password is only checked
// for presence and minimum length here; the full policy applies at sign-up.
func SignInDefinition(d Deps) form.Definition[LoginResponse] {
	minLen := d.policy().MinLength

	return form.Definition[LoginResponse]{
		Name: "signin",
		Fields: []form.Field{
			{
				Name:  FieldEmail,
				Kind:  form.KindEmail,
				Label: "fields.email",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "email"},
			},
			{
				Name:  FieldPassword,
				Kind:  form.KindPassword,
				Label: "fields.password",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "current-password"},
			},
		},
		Sanitize: func(v form.Values) form.Values {
			v[FieldEmail] = sanitizer.NormalizeEmail(v.String(FieldEmail))
			return v
		},
		Validate: func(v form.Values) error {
			return validator.Apply(
				validator.Required(FieldEmail, v.String(FieldEmail)),
				validator.ValidEmail(FieldEmail, v.String(FieldEmail)),
				validator.Required(FieldPassword, v.String(FieldPassword)),
				validator.MinLen(FieldPassword, v.String(FieldPassword), minLen),
			)
		},
		Submit: func(ctx context.Context, v form.Values) (LoginResponse, error) {
			var resp LoginResponse
			req := LoginRequest{Email: v.String(FieldEmail), Password: v.String(FieldPassword)}
			if err := d.API.PostJSON(ctx, LoginPath, req, &resp); err != nil {
				return LoginResponse{}, err
			}
			if d.Session != nil {
				tokens := session.Tokens{Access: resp.Access, Refresh: resp.Refresh}
				if err := d.Session.SignIn(tokens, resp.User); err != nil {
					return LoginResponse{}, fmt.Errorf("storing login: %w", err)
				}
			}
			return resp, nil
		},
		OnSuccess: func(ctx context.Context, _ LoginResponse) {
			d.Navigate(ctx, navigation.RouteDashboard)
		},
	}
}

// NewSignIn creates a sign-in form controller.
func NewSignIn(d Deps, opts ...form.Option) (*form.Controller[LoginResponse], error) {
	return form.New(SignInDefinition(d), d.FormOptions(opts)...)
}
