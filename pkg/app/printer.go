package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/hokaccha/go-prettyjson"
	"github.com/vmihailenco/msgpack/v5"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/morse/pkg/codec"
)

// Printer writes translation results in one output format.
type Printer struct {
	format OutputFormat
	out    io.Writer
	errOut io.Writer

	pretty *prettyjson.Formatter
	yaml   *yaml.Encoder
	msgp   *msgpack.Encoder
	tpl    *template.Template
}

// NewPrinter returns a Printer for the effective output format. Close must
// be called once all results are printed.
func (a *App) NewPrinter() (*Printer, error) {
	p := &Printer{
		format: a.Output(),
		out:    a.OutWriter,
		errOut: a.ErrWriter,
	}

	switch p.format {
	case OutputFormatJSON:
		p.pretty = prettyjson.NewFormatter()
		p.pretty.DisabledColor = !a.Color()
		if a.Color() {
			p.out = a.ColorableOut
		}
	case OutputFormatYAML:
		p.yaml = yaml.NewEncoder(p.out)
		p.yaml.SetIndent(2)
	case OutputFormatMsgPack:
		p.msgp = msgpack.NewEncoder(p.out)
	case OutputFormatTemplate:
		text := a.TemplateFlag
		if text == "" {
			text = a.Cfg.Template
		}
		if text == "" {
			return nil, fmt.Errorf("--output template requires --template or a template in the config file")
		}
		tpl, err := template.New("morse").Funcs(sprig.TxtFuncMap()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template: %w", err)
		}
		p.tpl = tpl
	}
	return p, nil
}

// Print writes one result.
func (p *Printer) Print(res codec.Result) error {
	switch p.format {
	case OutputFormatJSON:
		b, err := p.pretty.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(b))
		return err
	case OutputFormatJSONEachRow:
		b, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(b))
		return err
	case OutputFormatYAML:
		return p.yaml.Encode(res)
	case OutputFormatMsgPack:
		return p.msgp.Encode(res)
	case OutputFormatTemplate:
		var sb strings.Builder
		if err := p.tpl.Execute(&sb, res); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		_, err := fmt.Fprintln(p.out, sb.String())
		return err
	default:
		if _, err := fmt.Fprintln(p.out, res.Output); err != nil {
			return err
		}
		if !res.OK {
			fmt.Fprintf(p.errOut, "unsupported: %s\n", quoteAll(res.Unsupported))
		}
		return nil
	}
}

// Close flushes buffered output.
func (p *Printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}

func quoteAll(units []string) string {
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = strconv.Quote(u)
	}
	return strings.Join(quoted, " ")
}
