//go:build !norwegian && !spanish

package morse

// Extension names the regional table compiled into this build.
const Extension = ""

var (
	extensionEncode = map[rune]string{}
	extensionDecode = map[string]rune{}
)
