package countup

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders n with the grouping conventions of lang ("67,000" in
// English). Unknown language codes fall back to English.
func Format(lang string, n int64) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}
