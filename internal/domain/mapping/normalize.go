package mapping

import (
	"regexp"
	"strings"
)

var (
	separatorRuns = regexp.MustCompile(`[_\-\s]+`)
	nonWordChars  = regexp.MustCompile(`[^\w ]`)
)

// Normalize lowercases and trims a header or label, collapses runs of
// underscores, hyphens, and whitespace into a single space, and strips every
// remaining character that is neither a word character nor a space. Headers,
// field labels, and synonyms all go through the same normalization so the
// three are compared on equal footing.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = separatorRuns.ReplaceAllString(s, " ")
	s = nonWordChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
