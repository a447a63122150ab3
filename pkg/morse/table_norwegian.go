//go:build norwegian && !spanish

package morse

const Extension = "norwegian"

var extensionEncode = map[rune]string{
	'æ': "._._",
	'ø': "___.",
	'å': ".__._",
}

var extensionDecode = map[string]rune{
	"._._":  'æ',
	"___.":  'ø',
	".__._": 'å',
}
