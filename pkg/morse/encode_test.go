package morse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t\n", ""},
		{"sos", "sos", "... ___ ..."},
		{"word", "abc", "._ _... _._."},
		{"multiple words", "abc def", "._ _... _._. / _.. . .._."},
		{"upper case", "SOS", "... ___ ..."},
		{"mixed case", "HeLLo", ".... . ._.. ._.. ___"},
		{"trimmed", "  sos \n", "... ___ ..."},
		{"inner spaces kept", "a  b", "._ / / _..."},
		{"digits", "0123456789", "_____ .____ ..___ ...__ ...._ ..... _.... __... ___.. ____."},
		{"punctuation", "(a+b)=c?", "_.__. ._ ._._. _... _.__._ _..._ _._. ..__.."},
		{"quote and dollar", `"$@"`, "._.._. ..._.._ .__._. ._.._."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeLetters(t *testing.T) {
	want := map[string]string{
		"a": "._", "b": "_...", "c": "_._.", "d": "_..", "e": ".", "f": ".._.",
		"g": "__.", "h": "....", "i": "..", "j": ".___", "k": "_._", "l": "._..",
		"m": "__", "n": "_.", "o": "___", "p": ".__.", "q": "__._", "r": "._.",
		"s": "...", "t": "_", "u": ".._", "v": "..._", "w": ".__", "x": "_.._",
		"y": "_.__", "z": "__..",
	}
	for in, token := range want {
		got, err := Encode(in)
		require.NoError(t, err)
		require.Equal(t, token, got, "encode %q", in)
	}
}

func TestEncodePunctuation(t *testing.T) {
	want := map[string]string{
		".": "._._._", ",": "__..__", "?": "..__..", "'": ".____.", "!": "_._.__",
		"/": "_.._.", "(": "_.__.", ")": "_.__._", "&": "._...", ":": "___...",
		";": "_._._.", "=": "_..._", "+": "._._.", "-": "_...._", "_": "..__._",
		`"`: "._.._.", "$": "..._.._", "@": ".__._.",
	}
	for in, token := range want {
		got, err := Encode(in)
		require.NoError(t, err)
		require.Equal(t, token, got, "encode %q", in)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	out, err := Encode("~Hello!")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupported))
	require.Equal(t, "# .... . ._.. ._.. ___ _._.__", out)

	var te *TranslationError
	require.True(t, errors.As(err, &te))
	require.Equal(t, "encode", te.Op)
	require.Equal(t, []string{"~"}, te.Unsupported)
	require.Equal(t, "# .... . ._.. ._.. ___ _._.__", te.Partial)
}

func TestEncodeUnsupportedKeepsDuplicates(t *testing.T) {
	out, err := Encode("a~a~")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	require.Equal(t, []string{"~", "~"}, te.Unsupported)
	require.Equal(t, "._ # ._ #", out)
	require.EqualError(t, err, `morse: encode: 2 unsupported units: "~", "~"`)
}

func TestEncodeUnsupportedOrder(t *testing.T) {
	_, err := Encode("x%y^z#")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	require.Equal(t, []string{"%", "^", "#"}, te.Unsupported)
	require.Equal(t, "_.._ # _.__ # __.. #", te.Partial)
}
