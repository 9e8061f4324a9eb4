package project

import (
	"context"
	"strconv"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/catalog"
	"github.com/RafeefAlsuhaibani/takaful-sub001/internal/modkit"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/sanitizer"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

const (
	Path = "/api/admin/projects/"

	MessageCreated = "toast.project_created"
)

const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldCity             = "city"
	FieldSkills           = "skills"
	FieldAvailableDays    = "available_days"
	FieldVolunteersNeeded = "volunteers_needed"
	FieldStartDate        = "start_date"
)

const (
	MaxSkills     = 10
	MinVolunteers = 1
	MaxVolunteers = 500

	titleMinLen       = 3
	titleMaxLen       = 120
	descriptionMaxLen = 2000
	defaultVolunteers = "10"
)

// Deps are the collaborators of the add-project form.
type Deps struct {
	modkit.Base

	Cities []form.Choice
	// Now anchors the earliest allowed start date. Defaults to time.Now.
	Now func() time.Time
}

func (d Deps) cities() []form.Choice {
	if len(d.Cities) == 0 {
		return catalog.Cities()
	}
	return d.Cities
}

func (d Deps) today() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Request is the body of POST /api/admin/projects/.
type Request struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	City             string   `json:"city"`
	Skills           []string `json:"skills"`
	AvailableDays    []string `json:"available_days"`
	VolunteersNeeded int      `json:"volunteers_needed"`
	StartDate        string   `json:"start_date"`
}

// Response is the created project.
type Response struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

// Definition describes the add-project form.
func Definition(d Deps) form.Definition[Response] {
	cities := d.cities()
	days := catalog.Weekdays()

	return form.Definition[Response]{
		Name: "project",
		Fields: []form.Field{
			{Name: FieldTitle, Kind: form.KindText, Label: "fields.title"},
			{Name: FieldDescription, Kind: form.KindTextArea, Label: "fields.description"},
			{Name: FieldCity, Kind: form.KindSelect, Label: "fields.city", Choices: cities},
			{Name: FieldSkills, Kind: form.KindTags, Label: "fields.skills", MaxItems: MaxSkills},
			{Name: FieldAvailableDays, Kind: form.KindChips, Label: "fields.available_days", Choices: days},
			{
				Name:    FieldVolunteersNeeded,
				Kind:    form.KindNumber,
				Label:   "fields.volunteers_needed",
				Default: defaultVolunteers,
				Input:   form.InputOptions{Dir: form.DirLTR, Numeric: true, Min: MinVolunteers, Max: MaxVolunteers},
			},
			{
				Name:  FieldStartDate,
				Kind:  form.KindDate,
				Label: "fields.start_date",
				Input: form.InputOptions{Dir: form.DirLTR},
			},
		},
		Sanitize: func(v form.Values) form.Values {
			v[FieldTitle] = sanitizer.PlainText(v.String(FieldTitle))
			v[FieldDescription] = sanitizer.StripHTML(v.String(FieldDescription))
			v[FieldCity] = sanitizer.Trim(v.String(FieldCity))
			v[FieldSkills] = sanitizer.SanitizeSlice(v.List(FieldSkills), sanitizer.PlainText)
			v[FieldVolunteersNeeded] = sanitizer.NormalizeDigits(sanitizer.Trim(v.String(FieldVolunteersNeeded)))
			v[FieldStartDate] = sanitizer.NormalizeDigits(sanitizer.Trim(v.String(FieldStartDate)))
			return v
		},
		Validate: func(v form.Values) error {
			return validator.Apply(
				validator.Required(FieldTitle, v.String(FieldTitle)),
				validator.MinLen(FieldTitle, v.String(FieldTitle), titleMinLen),
				validator.MaxLen(FieldTitle, v.String(FieldTitle), titleMaxLen),
				validator.Required(FieldDescription, v.String(FieldDescription)),
				validator.MaxLen(FieldDescription, v.String(FieldDescription), descriptionMaxLen),
				validator.Required(FieldCity, v.String(FieldCity)),
				validator.InList(FieldCity, v.String(FieldCity), catalog.Values(cities)),
				validator.MaxLenSlice(FieldSkills, v.List(FieldSkills), MaxSkills),
				validator.RequiredSlice(FieldAvailableDays, v.List(FieldAvailableDays)),
				validator.AllInList(FieldAvailableDays, v.List(FieldAvailableDays), catalog.Values(days)),
				validator.Required(FieldVolunteersNeeded, v.String(FieldVolunteersNeeded)),
				validator.IntStringBetween(FieldVolunteersNeeded, v.String(FieldVolunteersNeeded), MinVolunteers, MaxVolunteers),
				validator.Required(FieldStartDate, v.String(FieldStartDate)),
				validator.ValidDate(FieldStartDate, v.String(FieldStartDate)),
				validator.DateNotBefore(FieldStartDate, v.String(FieldStartDate), d.today()),
			)
		},
		Submit: func(ctx context.Context, v form.Values) (Response, error) {
			// Validation guarantees the number parses.
			needed, _ := strconv.Atoi(v.String(FieldVolunteersNeeded))

			var resp Response
			req := Request{
				Title:            v.String(FieldTitle),
				Description:      v.String(FieldDescription),
				City:             v.String(FieldCity),
				Skills:           nonNil(v.List(FieldSkills)),
				AvailableDays:    v.List(FieldAvailableDays),
				VolunteersNeeded: needed,
				StartDate:        v.String(FieldStartDate),
			}
			err := d.API.PostJSON(ctx, Path, req, &resp, apiclient.Authenticated())
			return resp, err
		},
		OnSuccess: func(ctx context.Context, _ Response) {
			d.Notify(MessageCreated)
			d.Navigate(ctx, navigation.RouteProjects)
		},
	}
}

// New creates an add-project form controller.
func New(d Deps, opts ...form.Option) (*form.Controller[Response], error) {
	return form.New(Definition(d), d.FormOptions(opts)...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
