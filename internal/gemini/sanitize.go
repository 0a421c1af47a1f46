package gemini

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizePromptInput prepares free-text user input for prompt inclusion:
// control characters are stripped, whitespace runs collapsed, and the result
// truncated to maxLen runes.
func SanitizePromptInput(input string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(input))

	lastSpace := false
	for _, r := range input {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	out := strings.TrimSpace(b.String())
	if maxLen > 0 && utf8.RuneCountInString(out) > maxLen {
		runes := []rune(out)
		out = string(runes[:maxLen])
	}
	return out
}

// DetectInputLanguage guesses whether free text is Arabic or English by
// letter-script majority. Used only as a prompt hint; the model re-detects
// language itself.
func DetectInputLanguage(input string) string {
	arabic, latin := 0, 0
	for _, r := range input {
		switch {
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.IsLetter(r):
			latin++
		}
	}
	if arabic > latin {
		return "ar"
	}
	return "en"
}
