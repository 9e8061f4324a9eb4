package form

import (
	"slices"
	"strconv"
)

// Kind selects how a field stores its value and how it is rendered.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindPhone    Kind = "phone"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindToggle   Kind = "toggle"
	KindTags     Kind = "tags"
	KindChips    Kind = "chips"
)

// Direction is the text direction hint passed to the input.
type Direction string

const (
	DirAuto Direction = ""
	DirRTL  Direction = "rtl"
	DirLTR  Direction = "ltr"
)

// InputOptions enumerates the attributes an input may pass through to the
// rendered control. Anything not listed here is not forwarded.
type InputOptions struct {
	Dir          Direction
	AutoComplete string
	Numeric      bool // numeric input mode
	Min          int
	Max          int // zero disables both bounds
}

// Attributes renders the options as HTML attribute pairs.
func (o InputOptions) Attributes() map[string]string {
	attrs := make(map[string]string, 5)
	if o.Dir != DirAuto {
		attrs["dir"] = string(o.Dir)
	}
	if o.AutoComplete != "" {
		attrs["autocomplete"] = o.AutoComplete
	}
	if o.Numeric {
		attrs["inputmode"] = "numeric"
	}
	if o.Max != 0 {
		attrs["min"] = strconv.Itoa(o.Min)
		attrs["max"] = strconv.Itoa(o.Max)
	}
	return attrs
}

// Choice is a selectable option of a select or chips field.
type Choice struct {
	Value string
	Label string // translation key
}

// Field describes one form input.
type Field struct {
	Name     string
	Kind     Kind
	Label    string // translation key
	Default  any
	Choices  []Choice
	MaxItems int // tags and chips; zero means unlimited
	Input    InputOptions
}

// HasChoice reports whether value is one of the field's choices.
func (f Field) HasChoice(value string) bool {
	return slices.ContainsFunc(f.Choices, func(c Choice) bool { return c.Value == value })
}

// ChoiceValues returns the raw values of the field's choices.
func (f Field) ChoiceValues() []string {
	values := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		values[i] = c.Value
	}
	return values
}

func (f Field) isList() bool {
	return f.Kind == KindTags || f.Kind == KindChips
}

// initial returns the value a field holds on mount and after a reset.
func (f Field) initial() any {
	switch {
	case f.Kind == KindToggle:
		b, _ := f.Default.(bool)
		return b
	case f.isList():
		list, _ := f.Default.([]string)
		return slices.Clone(list)
	default:
		s, _ := f.Default.(string)
		return s
	}
}

// accepts normalizes value for the field's kind and reports whether it fits.
func (f Field) accepts(value any) (any, bool) {
	switch {
	case f.Kind == KindToggle:
		b, ok := value.(bool)
		return b, ok
	case f.isList():
		list, ok := value.([]string)
		return slices.Clone(list), ok
	default:
		s, ok := value.(string)
		return s, ok
	}
}
