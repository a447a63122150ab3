package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormat controls how translation results are printed.
type OutputFormat string

const (
	OutputFormatText        OutputFormat = "text"
	OutputFormatJSON        OutputFormat = "json"
	OutputFormatJSONEachRow OutputFormat = "json-each-row"
	OutputFormatYAML        OutputFormat = "yaml"
	OutputFormatMsgPack     OutputFormat = "msgpack"
	OutputFormatTemplate    OutputFormat = "template"
)

// OutputFormats lists every accepted output format.
var OutputFormats = []string{"text", "json", "json-each-row", "yaml", "msgpack", "template"}

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "text", "json", "json-each-row", "yaml", "msgpack", "template":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: text, json, json-each-row, yaml, msgpack, template")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return OutputFormats, cobra.ShellCompDirectiveNoFileComp
}

// InputMode controls how stdin is split into translations.
type InputMode string

const (
	InputModeLine InputMode = "line"
	InputModeFull InputMode = "full"
)

func (e *InputMode) String() string {
	return string(*e)
}

func (e *InputMode) Set(v string) error {
	switch v {
	case "line", "full":
		*e = InputMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of: line, full")
	}
}

func (e *InputMode) Type() string {
	return "InputMode"
}

// CompleteInputMode provides shell completion for --input-mode.
func CompleteInputMode(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"line", "full"}, cobra.ShellCompDirectiveNoFileComp
}
