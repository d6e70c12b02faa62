package mdblog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugFallback is used when a tag slugifies to nothing (e.g. "???").
const slugFallback = "tag"

// slugSpecialCases transliterates tag names whose meaning lives in symbols
// that URL slugs cannot carry. Matched case-insensitively before the general
// rules run.
var slugSpecialCases = map[string]string{
	"c++":  "c-plus-plus",
	"c#":   "c-sharp",
	".net": "dotnet",
	"f#":   "f-sharp",
}

// diacriticFolder strips combining marks after canonical decomposition,
// so "Café" slugifies to "cafe" rather than losing the letter entirely.
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a tag name to a URL-safe slug.
//
// Rules, in order: known symbol names transliterate ("C++" -> "c-plus-plus",
// "C#" -> "c-sharp", ".NET" -> "dotnet", "F#" -> "f-sharp"); otherwise the
// name is lowercased, diacritics are folded, whitespace becomes hyphens,
// remaining non-alphanumeric runes are dropped, and hyphen runs collapse.
// Slugify is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if slug, ok := slugSpecialCases[lower]; ok {
		return slug
	}

	if folded, _, err := transform.String(diacriticFolder, lower); err == nil {
		lower = folded
	}

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			sb.WriteByte('-')
		}
	}

	slug := collapseHyphens(sb.String())
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}

// collapseHyphens replaces runs of consecutive hyphens with a single hyphen.
func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
