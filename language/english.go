package language

import (
	"strings"
	"unicode"
)

// englishFunctionWords are high-frequency words that mark English text even
// when transliterated terms push the ASCII ratio down.
var englishFunctionWords = map[string]bool{
	"the": true, "is": true, "at": true, "which": true, "on": true,
	"and": true, "a": true, "to": true, "are": true, "as": true,
	"was": true, "will": true, "what": true, "when": true, "where": true,
	"how": true,
}

// IsEnglish reports whether text is primarily English. Empty text counts as
// English. Text passes if over 80% of its runes are ASCII or over 10% of its
// words are English function words.
func IsEnglish(text string) bool {
	if text == "" {
		return true
	}

	asciiCount := 0
	runeCount := 0
	for _, r := range text {
		runeCount++
		if r < 128 {
			asciiCount++
		}
	}
	asciiRatio := float64(asciiCount) / float64(runeCount)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	englishWordCount := 0
	for _, word := range words {
		if englishFunctionWords[word] {
			englishWordCount++
		}
	}
	englishWordRatio := 0.0
	if len(words) > 0 {
		englishWordRatio = float64(englishWordCount) / float64(len(words))
	}

	return asciiRatio > 0.8 || englishWordRatio > 0.1
}
