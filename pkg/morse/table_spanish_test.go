//go:build spanish && !norwegian

package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// í and ú decode to the plain letters.
var aliases = map[rune]rune{
	'í': 'i',
	'ú': 'u',
}

func TestSpanish(t *testing.T) {
	require.Equal(t, "spanish", Extension)

	tests := []struct {
		char, token string
	}{
		{"á", ".__._"},
		{"é", ".._.."},
		{"ñ", "__.__"},
		{"ó", "___."},
		{"ü", "..__"},
		{"¿", ".._._"},
		{"¡", "__..._"},
	}
	for _, tt := range tests {
		got, err := Encode(tt.char)
		require.NoError(t, err)
		require.Equal(t, tt.token, got)

		got, err = Decode(tt.token)
		require.NoError(t, err)
		require.Equal(t, tt.char, got)
	}
}

func TestSpanishAliases(t *testing.T) {
	got, err := Encode("í ú")
	require.NoError(t, err)
	require.Equal(t, ".. / .._", got)

	got, err = Decode(got)
	require.NoError(t, err)
	require.Equal(t, "i u", got)
}

func TestSpanishUpperCase(t *testing.T) {
	got, err := Encode("ÑÁ")
	require.NoError(t, err)
	require.Equal(t, "__.__ .__._", got)
}
