package morse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"sos", "... ___ ...", "sos"},
		{"word", "._ _... _._.", "abc"},
		{"multiple words", "._ _... _._. / _.. . .._.", "abc def"},
		{"no spaces around separator", "._ _... _._./_.. . .._.", "abc def"},
		{"alternate dot", "*** ___ ***", "sos"},
		{"alternate dash", "... --- ...", "sos"},
		{"mixed spellings", "*- -*** -*-*", "abc"},
		{"trimmed", "\t... ___ ...\n", "sos"},
		{"repeated spaces", "...   ___  ...", "sos"},
		{"empty word", "._ / / _...", "a  b"},
		{"digits", "_____ .____ ..___ ...__ ...._ ..... _.... __... ___.. ____.", "0123456789"},
		{"punctuation", "._._._ __..__ ..__.. .____. _._.__ _.._.", ".,?'!/"},
		{"more punctuation", "_.__. _.__._ ._... ___... _._._. _..._ ._._. _...._ ..__._ ._.._. ..._.._ .__._.", `()&:;=+-_"$@`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	out, err := Decode("_______ ... ___ ...")
	require.True(t, errors.Is(err, ErrUnsupported))
	require.Equal(t, "#sos", out)

	var te *TranslationError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "decode", te.Op)
	require.Equal(t, []string{"_______"}, te.Unsupported)
	require.Equal(t, "#sos", te.Partial)
	require.EqualError(t, err, `morse: decode: 1 unsupported unit: "_______"`)
}

func TestDecodeUnsupportedAcrossWords(t *testing.T) {
	_, err := Decode("... x / abc ... / x")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	require.Equal(t, []string{"x", "abc", "x"}, te.Unsupported)
	require.Equal(t, "s# #s #", te.Partial)
}

func TestDecodeRecordsNormalizedToken(t *testing.T) {
	_, err := Decode("-------")
	var te *TranslationError
	require.ErrorAs(t, err, &te)
	require.Equal(t, []string{"_______"}, te.Unsupported)
}
