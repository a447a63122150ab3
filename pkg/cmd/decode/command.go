package decode

import (
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/codec"
)

// NewCommand returns the "morse decode" command.
func NewCommand(a *app.App) *cobra.Command {
	inputMode := app.InputModeLine

	cmd := &cobra.Command{
		Use:   "decode [SIGNAL...]",
		Short: "Decode morse code to text. Reads stdin if no signal is given.",
		Long:  "Decode morse code to text. Codes are separated by spaces and words by '/'. Dots may be written as '.' or '*', dashes as '_' or '-'. Unknown codes are written as '#' and make the command fail unless --lenient is set.",
		Example: `  morse decode '... ___ ...'
  morse decode -- '-.-. --.-'
  echo '._ _... _._. / _.. . .._.' | morse decode -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Translate(args, app.TranslateOptions{
				Direction: codec.DirectionDecode,
				InputMode: inputMode,
			})
		},
	}

	a.AddTranslateFlags(cmd)
	cmd.Flags().Var(&inputMode, "input-mode", "Read stdin line by line (line) or as a single signal (full)")
	_ = cmd.RegisterFlagCompletionFunc("input-mode", app.CompleteInputMode)

	return cmd
}
