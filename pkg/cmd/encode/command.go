package encode

import (
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/codec"
)

// NewCommand returns the "morse encode" command.
func NewCommand(a *app.App) *cobra.Command {
	inputMode := app.InputModeLine

	cmd := &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Encode text as morse code. Reads stdin if no text is given.",
		Long:  "Encode text as morse code. Letters are case-insensitive and words are separated by '/'. Characters without a code are written as '#' and make the command fail unless --lenient is set.",
		Example: `  morse encode sos
  echo 'Hello World' | morse encode
  morse encode -o json 'abc def'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Translate(args, app.TranslateOptions{
				Direction: codec.DirectionEncode,
				InputMode: inputMode,
			})
		},
	}

	a.AddTranslateFlags(cmd)
	cmd.Flags().Var(&inputMode, "input-mode", "Read stdin line by line (line) or as a single text (full)")
	_ = cmd.RegisterFlagCompletionFunc("input-mode", app.CompleteInputMode)

	return cmd
}
