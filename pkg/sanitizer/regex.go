package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`[\r\n]+`)
)
