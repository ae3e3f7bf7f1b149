// Package normalize prepares free-text transaction descriptions for matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "Salário"
// becomes "Salario" before the ASCII filter runs.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the text, strips diacritics, replaces anything
// outside [a-z0-9 ] with a space and collapses runs of whitespace.
// It is total: empty input yields empty output, and it is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// The chain cannot fail on valid UTF-8; on malformed input we
		// fall back to the lowered text and let the rune filter below
		// discard whatever is left.
		stripped = lowered
	}

	var sb strings.Builder
	sb.Grow(len(stripped))

	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			continue
		}

		sb.WriteByte(' ')
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// Tokens normalizes the text and splits it into whitespace-separated tokens.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
