package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the platform's primary language.
const DefaultLanguage = "ar"

// Direction is the writing direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// DirectionOf reports the writing direction for a language code.
func DirectionOf(lang string) Direction {
	tag, err := language.Parse(lang)
	if err != nil {
		return LTR
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ar", "fa", "he", "ur":
		return RTL
	}
	return LTR
}

// MatchLanguage picks the best supported language for the preferences, which
// may be BCP 47 tags or an Accept-Language header value. fallback is returned
// when nothing matches with at least high confidence.
func MatchLanguage(supported []string, fallback string, preferred ...string) string {
	if len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	var want []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		want = append(want, parsed...)
	}
	if len(want) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(want...)
	if conf < language.High {
		return fallback
	}
	return names[idx]
}
