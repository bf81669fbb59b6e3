// Package slug turns display names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaces     = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// Derive lowercases s, strips diacritics and keeps only [a-z0-9-].
// Whitespace runs become a single hyphen and the result never starts or
// ends with one. Uniqueness is not guaranteed.
func Derive(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		result = strings.ToLower(s)
	}

	result = disallowed.ReplaceAllString(result, "")
	result = strings.TrimSpace(result)
	result = spaces.ReplaceAllString(result, "-")
	result = hyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
