package morse

import "strings"

var spellings = strings.NewReplacer("*", ".", "-", "_")

// Decode translates a signal string back into text. Tokens may use '*'
// for a dot and '-' for a dash.
//
// Tokens without a character are written as Placeholder. In that case
// Decode returns the partial output along with a *TranslationError
// listing the raw tokens in the order they were met.
func Decode(input string) (string, error) {
	signal := strings.TrimSpace(spellings.Replace(input))

	var (
		b           strings.Builder
		unsupported []string
	)
	b.Grow(len(signal) / 2)
	for i, word := range strings.Split(signal, WordSeparator) {
		if i > 0 {
			b.WriteByte(' ')
		}
		for _, token := range strings.Split(strings.TrimSpace(word), " ") {
			// runs of spaces and empty words
			if token == "" {
				continue
			}
			c, ok := CharacterFor(token)
			if !ok {
				unsupported = append(unsupported, token)
				c = Placeholder
			}
			b.WriteRune(c)
		}
	}
	return result("decode", b.String(), unsupported)
}
