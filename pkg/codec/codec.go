package codec

import (
	"errors"
	"fmt"

	"github.com/birdayz/morse/pkg/morse"
)

// Encoder converts text to its signal representation.
type Encoder interface {
	// Encode text to signal form
	Encode(in string) (string, error)
}

// Decoder converts a signal representation back to text.
type Decoder interface {
	// Decode signal to text form
	Decode(in string) (string, error)
}

// Codec translates in both directions.
type Codec interface {
	Encoder
	Decoder
}

// Morse is the strict Codec backed by package morse.
type Morse struct{}

func (Morse) Encode(in string) (string, error) {
	return morse.Encode(in)
}

func (Morse) Decode(in string) (string, error) {
	return morse.Decode(in)
}

type lenient struct {
	c Codec
}

// Lenient wraps c so that untranslatable units are not an error: the
// partial output is returned instead. Any other error is passed through.
func Lenient(c Codec) Codec {
	return lenient{c: c}
}

func (l lenient) Encode(in string) (string, error) {
	return swallow(l.c.Encode(in))
}

func (l lenient) Decode(in string) (string, error) {
	return swallow(l.c.Decode(in))
}

func swallow(out string, err error) (string, error) {
	var te *morse.TranslationError
	if errors.As(err, &te) {
		return te.Partial, nil
	}
	return out, err
}

// Direction selects which way a translation runs.
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

func (d *Direction) String() string {
	return string(*d)
}

func (d *Direction) Set(v string) error {
	switch v {
	case "encode", "decode":
		*d = Direction(v)
		return nil
	default:
		return fmt.Errorf("must be one of: encode, decode")
	}
}

func (d *Direction) Type() string {
	return "Direction"
}

// Result is the outcome of translating one input.
type Result struct {
	Direction   Direction `json:"direction" yaml:"direction" msgpack:"direction"`
	Input       string    `json:"input" yaml:"input" msgpack:"input"`
	Output      string    `json:"output" yaml:"output" msgpack:"output"`
	Unsupported []string  `json:"unsupported,omitempty" yaml:"unsupported,omitempty" msgpack:"unsupported,omitempty"`
	OK          bool      `json:"ok" yaml:"ok" msgpack:"ok"`
}

// Translate runs one translation with c. Unsupported units are recorded in
// the Result rather than returned; the error is reserved for failures of
// any other kind.
func Translate(c Codec, d Direction, in string) (Result, error) {
	var (
		out string
		err error
	)
	switch d {
	case DirectionEncode:
		out, err = c.Encode(in)
	case DirectionDecode:
		out, err = c.Decode(in)
	default:
		return Result{}, fmt.Errorf("unknown direction %q", d)
	}

	res := Result{Direction: d, Input: in, Output: out, OK: true}
	var te *morse.TranslationError
	switch {
	case errors.As(err, &te):
		res.Output = te.Partial
		res.Unsupported = te.Unsupported
		res.OK = false
	case err != nil:
		return Result{}, err
	}
	return res, nil
}
