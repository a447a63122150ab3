package morse

import "sort"

// Placeholder stands in for every unit that could not be translated.
const Placeholder = '#'

// WordSeparator is the token that separates words in a signal string.
const WordSeparator = "/"

// encodeTable maps lowercase characters to tokens.
var encodeTable = map[rune]string{
	'a': "._",
	'b': "_...",
	'c': "_._.",
	'd': "_..",
	'e': ".",
	'f': ".._.",
	'g': "__.",
	'h': "....",
	'i': "..",
	'j': ".___",
	'k': "_._",
	'l': "._..",
	'm': "__",
	'n': "_.",
	'o': "___",
	'p': ".__.",
	'q': "__._",
	'r': "._.",
	's': "...",
	't': "_",
	'u': ".._",
	'v': "..._",
	'w': ".__",
	'x': "_.._",
	'y': "_.__",
	'z': "__..",

	'0': "_____",
	'1': ".____",
	'2': "..___",
	'3': "...__",
	'4': "...._",
	'5': ".....",
	'6': "_....",
	'7': "__...",
	'8': "___..",
	'9': "____.",

	'.':  "._._._",
	',':  "__..__",
	'?':  "..__..",
	'\'': ".____.",
	'!':  "_._.__",
	'/':  "_.._.",
	'(':  "_.__.",
	')':  "_.__._",
	'&':  "._...",
	':':  "___...",
	';':  "_._._.",
	'=':  "_..._",
	'+':  "._._.",
	'-':  "_...._",
	'_':  "..__._",
	'"':  "._.._.",
	'$':  "..._.._",
	'@':  ".__._.",

	' ': WordSeparator,
}

// decodeTable is the inverse of encodeTable.
var decodeTable = map[string]rune{
	"._":   'a',
	"_...": 'b',
	"_._.": 'c',
	"_..":  'd',
	".":    'e',
	".._.": 'f',
	"__.":  'g',
	"....": 'h',
	"..":   'i',
	".___": 'j',
	"_._":  'k',
	"._..": 'l',
	"__":   'm',
	"_.":   'n',
	"___":  'o',
	".__.": 'p',
	"__._": 'q',
	"._.":  'r',
	"...":  's',
	"_":    't',
	".._":  'u',
	"..._": 'v',
	".__":  'w',
	"_.._": 'x',
	"_.__": 'y',
	"__..": 'z',

	"_____": '0',
	".____": '1',
	"..___": '2',
	"...__": '3',
	"...._": '4',
	".....": '5',
	"_....": '6',
	"__...": '7',
	"___..": '8',
	"____.": '9',

	"._._._":  '.',
	"__..__":  ',',
	"..__..":  '?',
	".____.":  '\'',
	"_._.__":  '!',
	"_.._.":   '/',
	"_.__.":   '(',
	"_.__._":  ')',
	"._...":   '&',
	"___...":  ':',
	"_._._.":  ';',
	"_..._":   '=',
	"._._.":   '+',
	"_...._":  '-',
	"..__._":  '_',
	"._.._.":  '"',
	"..._.._": '$',
	".__._.":  '@',

	WordSeparator: ' ',
}

// TokenFor returns the token for r. Letters must already be lowercase.
func TokenFor(r rune) (string, bool) {
	if t, ok := encodeTable[r]; ok {
		return t, true
	}
	t, ok := extensionEncode[r]
	return t, ok
}

// CharacterFor returns the character a token stands for. Tokens in the
// base table take precedence over tokens added by an extension.
func CharacterFor(token string) (rune, bool) {
	if r, ok := decodeTable[token]; ok {
		return r, true
	}
	r, ok := extensionDecode[token]
	return r, ok
}

// Entry is one row of the alphabet.
type Entry struct {
	Character rune   `json:"character" yaml:"character"`
	Token     string `json:"token" yaml:"token"`
}

// Alphabet lists every encodable character together with its token,
// ordered by character.
func Alphabet() []Entry {
	entries := make([]Entry, 0, len(encodeTable)+len(extensionEncode))
	for r, t := range encodeTable {
		entries = append(entries, Entry{Character: r, Token: t})
	}
	for r, t := range extensionEncode {
		entries = append(entries, Entry{Character: r, Token: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Character < entries[j].Character
	})
	return entries
}
