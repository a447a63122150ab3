package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/birdayz/morse/pkg/codec"
)

const maxLineSize = 1024 * 1024

// TranslateOptions configures a Translate run.
type TranslateOptions struct {
	Direction codec.Direction
	InputMode InputMode
}

// Translate translates the command arguments, joined by spaces, or stdin
// when there are none. It prints every result and returns an error if any
// of them held unsupported units.
func (a *App) Translate(args []string, opts TranslateOptions) error {
	p, err := a.NewPrinter()
	if err != nil {
		return err
	}

	c := a.Codec()
	var total, failed int
	handle := func(in string) error {
		res, err := codec.Translate(c, opts.Direction, in)
		if err != nil {
			return err
		}
		total++
		if !res.OK {
			failed++
		}
		a.Log.Debug().
			Str("direction", string(opts.Direction)).
			Int("input_len", len(in)).
			Strs("unsupported", res.Unsupported).
			Msg("translated")
		return p.Print(res)
	}

	if len(args) > 0 {
		err = handle(strings.Join(args, " "))
	} else {
		err = a.eachInput(opts.InputMode, handle)
	}
	if closeErr := p.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs contained unsupported units", failed, total)
	}
	return nil
}

func (a *App) eachInput(mode InputMode, fn func(string) error) error {
	if mode == InputModeFull {
		data, err := io.ReadAll(a.InReader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return fn(string(data))
	}

	scanner := bufio.NewScanner(a.InReader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
