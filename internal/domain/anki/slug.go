package anki

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separatorRuns = regexp.MustCompile(`[-\s]+`)

// Slugify turns an arbitrary human-readable name into a filesystem-safe,
// lowercase ASCII token: accented characters fold to their base form,
// everything outside letters, digits, underscore, hyphen and whitespace is
// dropped, and runs of hyphens or whitespace collapse into one underscore.
//
// Slugify is idempotent and never fails. An all-punctuation input yields the
// empty string; callers needing a path segment substitute "_".
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		}
	}

	out := strings.ToLower(strings.TrimSpace(b.String()))
	return separatorRuns.ReplaceAllString(out, "_")
}

// SlugifyOr is Slugify with a fallback for inputs that sanitize away
// completely.
func SlugifyOr(s, fallback string) string {
	if out := Slugify(s); out != "" {
		return out
	}
	return fallback
}
