package signature

import (
	"strings"
	"unicode"
)

// toSnake converts a Go identifier to snake_case: BaseURL -> base_url, APIKey -> api_key.
func toSnake(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if i > 0 && isBoundary(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isBoundary(runes []rune, i int) bool {
	prev, curr := runes[i-1], runes[i]

	if !unicode.IsUpper(curr) {
		return false
	}

	// lower->upper: MaxTokens -> max_tokens.
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// end of an acronym: APIKey -> api_key.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
