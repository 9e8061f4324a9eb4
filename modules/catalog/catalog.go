// Package catalog holds the fixed option lists shared by the forms. Labels
// are translation keys.
package catalog

import "github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"

// Cities offered in city selects.
func Cities() []form.Choice {
	return []form.Choice{
		{Value: "riyadh", Label: "cities.riyadh"},
		{Value: "jeddah", Label: "cities.jeddah"},
		{Value: "makkah", Label: "cities.makkah"},
		{Value: "madinah", Label: "cities.madinah"},
		{Value: "dammam", Label: "cities.dammam"},
		{Value: "khobar", Label: "cities.khobar"},
		{Value: "abha", Label: "cities.abha"},
		{Value: "tabuk", Label: "cities.tabuk"},
		{Value: "taif", Label: "cities.taif"},
		{Value: "hail", Label: "cities.hail"},
	}
}

// Weekdays for availability chips, starting on Sunday.
func Weekdays() []form.Choice {
	return []form.Choice{
		{Value: "sun", Label: "days.sun"},
		{Value: "mon", Label: "days.mon"},
		{Value: "tue", Label: "days.tue"},
		{Value: "wed", Label: "days.wed"},
		{Value: "thu", Label: "days.thu"},
		{Value: "fri", Label: "days.fri"},
		{Value: "sat", Label: "days.sat"},
	}
}

// SuggestionCategories offered in the suggestion form.
func SuggestionCategories() []form.Choice {
	return []form.Choice{
		{Value: "project", Label: "suggestion.categories.project"},
		{Value: "improvement", Label: "suggestion.categories.improvement"},
		{Value: "partnership", Label: "suggestion.categories.partnership"},
		{Value: "other", Label: "suggestion.categories.other"},
	}
}

// Values returns the raw values of choices.
func Values(choices []form.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}
