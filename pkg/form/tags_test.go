package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
)

var days = []form.Choice{
	{Value: "sun", Label: "days.sun"},
	{Value: "mon", Label: "days.mon"},
	{Value: "tue", Label: "days.tue"},
	{Value: "wed", Label: "days.wed"},
}

func projectController(t *testing.T) *form.Controller[struct{}] {
	t.Helper()
	c, err := form.New(form.Definition[struct{}]{
		Name: "project",
		Fields: []form.Field{
			{Name: "title", Kind: form.KindText},
			{Name: "skills", Kind: form.KindTags, MaxItems: 3},
			{Name: "availableDays", Kind: form.KindChips, Choices: days, Default: []string{"mon"}},
			{Name: "remote", Kind: form.KindToggle, Default: true},
		},
		Submit: func(context.Context, form.Values) (struct{}, error) { return struct{}{}, nil },
	})
	require.NoError(t, err)
	return c
}

func TestController_Defaults(t *testing.T) {
	t.Parallel()

	c := projectController(t)
	v := c.Values()
	assert.Equal(t, "", v.String("title"))
	assert.Empty(t, v.List("skills"))
	assert.Equal(t, []string{"mon"}, v.List("availableDays"))
	assert.True(t, v.Bool("remote"))
}

func TestController_ToggleHasSetSemantics(t *testing.T) {
	t.Parallel()

	c := projectController(t)
	original := c.Values().List("availableDays")

	selected, err := c.Toggle("availableDays", "sun")
	require.NoError(t, err)
	assert.True(t, selected)
	assert.ElementsMatch(t, []string{"mon", "sun"}, c.Values().List("availableDays"))

	selected, err = c.Toggle("availableDays", "sun")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.ElementsMatch(t, original, c.Values().List("availableDays"))

	// Deselect then reselect an initially selected day: same set, order may differ.
	_, err = c.Toggle("availableDays", "mon")
	require.NoError(t, err)
	_, err = c.Toggle("availableDays", "tue")
	require.NoError(t, err)
	_, err = c.Toggle("availableDays", "mon")
	require.NoError(t, err)
	_, err = c.Toggle("availableDays", "tue")
	require.NoError(t, err)
	assert.ElementsMatch(t, original, c.Values().List("availableDays"))

	_, err = c.Toggle("availableDays", "fri")
	assert.ErrorIs(t, err, form.ErrUnknownOption)

	_, err = c.Toggle("skills", "go")
	assert.ErrorIs(t, err, form.ErrInvalidValue)
}

func TestController_Tags(t *testing.T) {
	t.Parallel()

	c := projectController(t)

	added, err := c.AddTag("skills", "  <b>First aid</b> ")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.AddTag("skills", "First aid")
	require.NoError(t, err)
	assert.False(t, added, "duplicates are ignored")

	_, err = c.AddTag("skills", "   ")
	assert.ErrorIs(t, err, form.ErrEmptyTag)

	_, err = c.AddTag("skills", "Driving")
	require.NoError(t, err)
	_, err = c.AddTag("skills", "Cooking")
	require.NoError(t, err)
	_, err = c.AddTag("skills", "Teaching")
	assert.ErrorIs(t, err, form.ErrTooManyItems)

	assert.Equal(t, []string{"First aid", "Driving", "Cooking"}, c.Values().List("skills"))

	require.NoError(t, c.RemoveTag("skills", "Driving"))
	require.NoError(t, c.RemoveTag("skills", "missing"))
	assert.Equal(t, []string{"First aid", "Cooking"}, c.Values().List("skills"))

	_, err = c.AddTag("title", "x")
	assert.ErrorIs(t, err, form.ErrInvalidValue)
}

func TestController_SetRejectsWrongKinds(t *testing.T) {
	t.Parallel()

	c := projectController(t)

	assert.ErrorIs(t, c.Set("title", true), form.ErrInvalidValue)
	assert.ErrorIs(t, c.Set("remote", "yes"), form.ErrInvalidValue)
	assert.ErrorIs(t, c.Set("skills", "go"), form.ErrInvalidValue)
	assert.ErrorIs(t, c.Set("nope", "x"), form.ErrUnknownField)

	require.NoError(t, c.SetBool("remote", false))
	assert.False(t, c.Value("remote").(bool))

	list := []string{"a"}
	require.NoError(t, c.Set("skills", list))
	list[0] = "mutated"
	assert.Equal(t, []string{"a"}, c.Values().List("skills"), "stored lists are copies")
}

func TestInputOptions_Attributes(t *testing.T) {
	t.Parallel()

	assert.Empty(t, form.InputOptions{}.Attributes())
	assert.Equal(t, map[string]string{
		"dir":          "ltr",
		"autocomplete": "tel",
		"inputmode":    "numeric",
		"min":          "1",
		"max":          "500",
	}, form.InputOptions{Dir: form.DirLTR, AutoComplete: "tel", Numeric: true, Min: 1, Max: 500}.Attributes())
}

func TestField_Choices(t *testing.T) {
	t.Parallel()

	f := form.Field{Name: "availableDays", Kind: form.KindChips, Choices: days}
	assert.True(t, f.HasChoice("sun"))
	assert.False(t, f.HasChoice("fri"))
	assert.Equal(t, []string{"sun", "mon", "tue", "wed"}, f.ChoiceValues())

	c := projectController(t)
	got, ok := c.Field("skills")
	require.True(t, ok)
	assert.Equal(t, 3, got.MaxItems)
	assert.Len(t, c.Fields(), 4)
	assert.Equal(t, "project", c.Name())
}
