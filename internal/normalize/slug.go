// Package normalize holds the pure canonicalization functions applied to event
// fields before persistence: slugs, dates, and times.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// stripMarks decomposes accented characters and removes the combining
	// marks, so "Café" becomes "Cafe".
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts a title into a lowercase URL-safe identifier: diacritics
// are stripped, characters outside [a-z0-9], whitespace and hyphens are
// dropped, and separator runs collapse into a single hyphen. An empty result
// is possible (e.g. for an all-symbol title) and is left for the caller's
// required-field check to reject.
func Slugify(title string) string {
	s, _, err := transform.String(stripMarks, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = separatorRuns.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}
