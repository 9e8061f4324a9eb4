package takaful

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

// Localizer renders validation errors and message keys in one language.
// It satisfies form.Localizer and stats.Labeler.
type Localizer struct {
	tr   *i18n.Translator
	lang string
}

// NewLocalizer binds tr to lang.
func NewLocalizer(tr *i18n.Translator, lang string) Localizer {
	return Localizer{tr: tr, lang: lang}
}

func (l Localizer) Language() string { return l.lang }

// Message translates key. Unknown keys come back unchanged.
func (l Localizer) Message(key string) string {
	if l.tr == nil {
		return key
	}
	return l.tr.T(l.lang, key)
}

// FieldError translates the error's key with its values as placeholders.
// Errors without a key keep their English message.
func (l Localizer) FieldError(verr validator.ValidationError) string {
	if l.tr == nil || verr.TranslationKey == "" {
		return verr.Message
	}
	if !l.tr.HasTranslation(l.lang, verr.TranslationKey) &&
		!l.tr.HasTranslation(l.tr.DefaultLanguage(), verr.TranslationKey) {
		return verr.Message
	}

	args := make([]string, 0, 2*len(verr.TranslationValues))
	for _, name := range slices.Sorted(maps.Keys(verr.TranslationValues)) {
		args = append(args, name, placeholder(verr.TranslationValues[name]))
	}
	return l.tr.T(l.lang, verr.TranslationKey, args...)
}

func placeholder(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
