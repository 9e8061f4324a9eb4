package form

import (
	"maps"
	"slices"
)

// Values maps field names to their current value: string, bool or []string.
type Values map[string]any

// String returns the string value of name, or "" for other kinds.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the bool value of name.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// List returns a copy of the list value of name.
func (v Values) List(name string) []string {
	list, _ := v[name].([]string)
	return slices.Clone(list)
}

// Clone returns a deep copy; list values are not shared with the original.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		if list, ok := val.([]string); ok {
			out[k] = slices.Clone(list)
			continue
		}
		out[k] = val
	}
	return out
}

// Errors maps field names to a single human-readable message.
type Errors map[string]string

// Clone returns a copy of the errors.
func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}
