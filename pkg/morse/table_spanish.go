//go:build spanish && !norwegian

package morse

const Extension = "spanish"

// í and ú share the tokens of i and u. They encode, but those tokens
// decode to the plain letters, which stay canonical.
var extensionEncode = map[rune]string{
	'á': ".__._",
	'é': ".._..",
	'í': "..",
	'ñ': "__.__",
	'ó': "___.",
	'ú': ".._",
	'ü': "..__",
	'¿': ".._._",
	'¡': "__..._",
}

var extensionDecode = map[string]rune{
	".__._":  'á',
	".._..":  'é',
	"__.__":  'ñ',
	"___.":   'ó',
	"..__":   'ü',
	".._._":  '¿',
	"__..._": '¡',
}
