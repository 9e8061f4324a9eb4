package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// maxStripPasses bounds the fixpoint loop in StripHTML. Each pass removes one
// level of entity-encoded markup.
const maxStripPasses = 16

// RichTextElements lists the inline formatting tags kept by SanitizeRichText.
var RichTextElements = []string{"b", "i", "em", "strong", "p", "br"}

var (
	policyOnce     sync.Once
	strictPolicy   *bluemonday.Policy
	richTextPolicy *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		rich := bluemonday.NewPolicy()
		rich.AllowElements(RichTextElements...)
		richTextPolicy = rich
	})
	return strictPolicy, richTextPolicy
}

// StripHTML removes every tag and attribute and returns plain text.
// Script and style bodies are dropped with their tags. Entities are decoded
// so plain text comes back unchanged, and the pass repeats until the output
// is stable so that entity-encoded markup cannot reappear as a live tag.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	strict, _ := policies()

	current := s
	for range maxStripPasses {
		next := html.UnescapeString(strict.Sanitize(current))
		if next == current {
			return next
		}
		current = next
	}
	return current
}

// SanitizeRichText keeps b, i, em, strong, p and br without any attributes
// and strips everything else, including event handlers and script-bearing
// elements. The output is HTML.
func SanitizeRichText(s string) string {
	if s == "" {
		return ""
	}
	_, rich := policies()
	return rich.Sanitize(s)
}

// PlainText strips markup and collapses whitespace. This is the default
// treatment for single-line free-text form fields.
func PlainText(s string) string {
	return Apply(s, StripHTML, NormalizeWhitespace)
}
