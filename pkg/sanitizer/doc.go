// Package sanitizer cleans user-supplied text before it is submitted or shown.
//
// Markup handling is delegated to bluemonday. StripHTML removes every tag and
// attribute and returns plain text, and SanitizeRichText keeps a small set of
// inline formatting tags (b, i, em, strong, p, br) with no attributes. Both
// are idempotent and never execute or evaluate the input.
//
// The remaining helpers are small string transforms (whitespace, digits,
// email normalization, phone display formatting, national ID masking) that
// compose with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.NormalizeWhitespace)
//	title := clean(rawTitle)
package sanitizer
