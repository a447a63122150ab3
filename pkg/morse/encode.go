package morse

import "strings"

// Encode translates text into a signal string. Input is lowercased and
// trimmed first.
//
// Every character without a token is written as Placeholder. In that case
// Encode returns the partial output along with a *TranslationError
// listing the characters in the order they were met.
func Encode(input string) (string, error) {
	text := strings.TrimSpace(strings.ToLower(input))

	var (
		b           strings.Builder
		unsupported []string
	)
	b.Grow(len(text) * 4)
	for _, c := range text {
		token, ok := TokenFor(c)
		if !ok {
			unsupported = append(unsupported, string(c))
			token = string(Placeholder)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	}
	return result("encode", b.String(), unsupported)
}
