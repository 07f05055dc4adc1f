package utils

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)
var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var multiDash = regexp.MustCompile(`-+`)

// Slugify derives the URL identifier used for public blog lookups:
// lower-case, whitespace collapsed to hyphens, non-word characters stripped,
// repeated hyphens collapsed.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = whitespace.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
