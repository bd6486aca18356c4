package generate

import "strings"

// markupRunes are formatting characters models leak into plain-text answers.
const markupRunes = "*#_`~[]{}|\\"

// CleanResponse strips markup characters, collapses whitespace, and ensures
// the text ends with sentence punctuation. Returns "" for text that was
// nothing but markup or whitespace.
func CleanResponse(response string) string {
	var b strings.Builder
	b.Grow(len(response))
	for _, r := range response {
		if strings.ContainsRune(markupRunes, r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")
	if cleaned == "" {
		return ""
	}

	if !strings.HasSuffix(cleaned, ".") &&
		!strings.HasSuffix(cleaned, "!") &&
		!strings.HasSuffix(cleaned, "?") {
		cleaned += "."
	}
	return cleaned
}

// wordCount counts whitespace-separated words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
