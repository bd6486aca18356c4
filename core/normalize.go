package core

import (
	"strings"
	"unicode"
)

// NormalizeText cleans corpus and query text into the canonical form used for
// both document identity and embedding. Characters outside letters, digits,
// whitespace and basic punctuation are replaced with spaces, whitespace is
// collapsed, and runs of terminal punctuation are reduced to one.
//
// The same normalization must be applied at ingestion time and at query time
// so the embedding space and content hashes stay consistent.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case strings.ContainsRune(".,!?()-", r):
			b.WriteRune(r)
		default:
			// Decorative punctuation, control characters, emoji
			b.WriteRune(' ')
		}
	}

	normalized := strings.Join(strings.Fields(b.String()), " ")
	normalized = collapseRuns(normalized, '.')
	normalized = collapseRuns(normalized, '!')
	normalized = collapseRuns(normalized, '?')
	return strings.TrimSpace(normalized)
}

// collapseRuns reduces consecutive repetitions of c to a single occurrence.
func collapseRuns(s string, c byte) string {
	if !strings.Contains(s, string([]byte{c, c})) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev byte
	for i := 0; i < len(s); i++ {
		if s[i] == c && prev == c {
			continue
		}
		b.WriteByte(s[i])
		prev = s[i]
	}
	return b.String()
}
