package form

import (
	"fmt"
	"slices"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/sanitizer"
)

// AddTag appends tag to a tags field. The tag is stripped of markup and
// whitespace-normalized first. Duplicates are ignored and reported as
// added == false.
func (c *Controller[R]) AddTag(name, tag string) (added bool, err error) {
	err = c.edit(name, func(f Field, current any) (any, error) {
		if f.Kind != KindTags {
			return nil, fmt.Errorf("%w: %q is %s, not tags", ErrInvalidValue, name, f.Kind)
		}
		clean := sanitizer.PlainText(tag)
		if clean == "" {
			return nil, ErrEmptyTag
		}
		list, _ := current.([]string)
		if slices.Contains(list, clean) {
			return list, nil
		}
		if f.MaxItems > 0 && len(list) >= f.MaxItems {
			return nil, fmt.Errorf("%w: %q allows %d", ErrTooManyItems, name, f.MaxItems)
		}
		added = true
		return append(slices.Clone(list), clean), nil
	})
	return added, err
}

// RemoveTag removes tag from a tags field. Removing a missing tag is a no-op.
func (c *Controller[R]) RemoveTag(name, tag string) error {
	return c.edit(name, func(f Field, current any) (any, error) {
		if f.Kind != KindTags {
			return nil, fmt.Errorf("%w: %q is %s, not tags", ErrInvalidValue, name, f.Kind)
		}
		list, _ := current.([]string)
		return slices.DeleteFunc(slices.Clone(list), func(s string) bool { return s == tag }), nil
	})
}

// Toggle flips membership of option in a chips field. The field has set
// semantics: toggling the same option twice restores the original set.
func (c *Controller[R]) Toggle(name, option string) (selected bool, err error) {
	err = c.edit(name, func(f Field, current any) (any, error) {
		if f.Kind != KindChips {
			return nil, fmt.Errorf("%w: %q is %s, not chips", ErrInvalidValue, name, f.Kind)
		}
		if len(f.Choices) > 0 && !f.HasChoice(option) {
			return nil, fmt.Errorf("%w: %q on %q", ErrUnknownOption, option, name)
		}
		list, _ := current.([]string)
		if slices.Contains(list, option) {
			return slices.DeleteFunc(slices.Clone(list), func(s string) bool { return s == option }), nil
		}
		if f.MaxItems > 0 && len(list) >= f.MaxItems {
			return nil, fmt.Errorf("%w: %q allows %d", ErrTooManyItems, name, f.MaxItems)
		}
		selected = true
		return append(slices.Clone(list), option), nil
	})
	return selected, err
}
