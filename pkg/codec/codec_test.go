package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/morse/pkg/morse"
)

func TestMorse(t *testing.T) {
	var c Codec = Morse{}

	out, err := c.Encode("sos")
	require.NoError(t, err)
	require.Equal(t, "... ___ ...", out)

	out, err = c.Decode("... ___ ...")
	require.NoError(t, err)
	require.Equal(t, "sos", out)

	_, err = c.Decode("_______")
	require.ErrorIs(t, err, morse.ErrUnsupported)
}

func TestLenient(t *testing.T) {
	c := Lenient(Morse{})

	out, err := c.Encode("~Hello!")
	require.NoError(t, err)
	require.Equal(t, "# .... . ._.. ._.. ___ _._.__", out)

	out, err = c.Decode("_______ ... ___ ...")
	require.NoError(t, err)
	require.Equal(t, "#sos", out)
}

type failing struct{}

var errBroken = errors.New("broken")

func (failing) Encode(string) (string, error) { return "", errBroken }
func (failing) Decode(string) (string, error) { return "", errBroken }

func TestLenientPassesOtherErrors(t *testing.T) {
	_, err := Lenient(failing{}).Encode("a")
	require.ErrorIs(t, err, errBroken)
}

func TestTranslate(t *testing.T) {
	res, err := Translate(Morse{}, DirectionEncode, "abc def")
	require.NoError(t, err)
	require.Equal(t, Result{
		Direction: DirectionEncode,
		Input:     "abc def",
		Output:    "._ _... _._. / _.. . .._.",
		OK:        true,
	}, res)

	res, err = Translate(Morse{}, DirectionDecode, "_______ ... ___ ...")
	require.NoError(t, err)
	require.False(t, res.OK)
	require.Equal(t, "#sos", res.Output)
	require.Equal(t, []string{"_______"}, res.Unsupported)
}

func TestTranslateLenientStillReportsOK(t *testing.T) {
	res, err := Translate(Lenient(Morse{}), DirectionEncode, "a~")
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "._ #", res.Output)
}

func TestTranslateErrors(t *testing.T) {
	_, err := Translate(failing{}, DirectionDecode, "...")
	require.ErrorIs(t, err, errBroken)

	_, err = Translate(Morse{}, Direction("sideways"), "...")
	require.ErrorContains(t, err, "unknown direction")
}

func TestDirectionSet(t *testing.T) {
	var d Direction
	require.NoError(t, d.Set("decode"))
	require.Equal(t, DirectionDecode, d)
	require.Equal(t, "decode", d.String())
	require.Error(t, d.Set("both"))
}
