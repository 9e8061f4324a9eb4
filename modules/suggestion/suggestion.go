package suggestion

import (
	"context"

	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/catalog"
	"github.com/RafeefAlsuhaibani/takaful-sub001/internal/modkit"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/sanitizer"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

const (
	Path = "/api/admin/suggestions/"

	MessageSent = "toast.suggestion_sent"
)

const (
	FieldTitle        = "title"
	FieldCategory     = "category"
	FieldDescription  = "description"
	FieldContactEmail = "contact_email"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 120
	descriptionMinLen = 10
	descriptionMaxLen = 2000
)

// Deps are the collaborators of the suggestion form.
type Deps struct {
	modkit.Base

	// Categories overrides the built-in category list.
	Categories []form.Choice
}

func (d Deps) categories() []form.Choice {
	if len(d.Categories) == 0 {
		return catalog.SuggestionCategories()
	}
	return d.Categories
}

// Request is the body of POST /api/admin/suggestions/. The description is
// sanitized HTML.
type Request struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// Response is the created suggestion as echoed by the backend.
type Response struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status,omitempty"`
}

// Definition describes the suggestion form.
func Definition(d Deps) form.Definition[Response] {
	categories := d.categories()

	return form.Definition[Response]{
		Name: "suggestion",
		Fields: []form.Field{
			{
				Name:  FieldTitle,
				Kind:  form.KindText,
				Label: "fields.title",
			},
			{
				Name:    FieldCategory,
				Kind:    form.KindSelect,
				Label:   "fields.category",
				Choices: categories,
			},
			{
				Name:  FieldDescription,
				Kind:  form.KindTextArea,
				Label: "fields.description",
			},
			{
				Name:  FieldContactEmail,
				Kind:  form.KindEmail,
				Label: "fields.contact_email",
				Input: form.InputOptions{Dir: form.DirLTR, AutoComplete: "email"},
			},
		},
		Sanitize: func(v form.Values) form.Values {
			v[FieldTitle] = sanitizer.PlainText(v.String(FieldTitle))
			v[FieldCategory] = sanitizer.Trim(v.String(FieldCategory))
			v[FieldDescription] = sanitizer.Trim(sanitizer.SanitizeRichText(v.String(FieldDescription)))
			v[FieldContactEmail] = sanitizer.NormalizeEmail(v.String(FieldContactEmail))
			return v
		},
		Validate: func(v form.Values) error {
			// Length limits apply to the visible text, not to the retained markup.
			text := sanitizer.PlainText(v.String(FieldDescription))
			contact := v.String(FieldContactEmail)

			rules := []validator.Rule{
				validator.Required(FieldTitle, v.String(FieldTitle)),
				validator.MinLen(FieldTitle, v.String(FieldTitle), titleMinLen),
				validator.MaxLen(FieldTitle, v.String(FieldTitle), titleMaxLen),
				validator.Required(FieldCategory, v.String(FieldCategory)),
				validator.InList(FieldCategory, v.String(FieldCategory), catalog.Values(categories)),
				validator.Required(FieldDescription, text),
				validator.MinLen(FieldDescription, text, descriptionMinLen),
				validator.MaxLen(FieldDescription, text, descriptionMaxLen),
			}
			rules = append(rules, validator.When(contact != "", validator.ValidEmail(FieldContactEmail, contact))...)
			return validator.Apply(rules...)
		},
		Submit: func(ctx context.Context, v form.Values) (Response, error) {
			var resp Response
			req := Request{
				Title:        v.String(FieldTitle),
				Category:     v.String(FieldCategory),
				Description:  v.String(FieldDescription),
				ContactEmail: v.String(FieldContactEmail),
			}
			err := d.API.PostJSON(ctx, Path, req, &resp, apiclient.Authenticated())
			return resp, err
		},
		OnSuccess: func(context.Context, Response) {
			d.Notify(MessageSent)
		},
	}
}

// New creates a suggestion form controller.
func New(d Deps, opts ...form.Option) (*form.Controller[Response], error) {
	return form.New(Definition(d), d.FormOptions(opts)...)
}
