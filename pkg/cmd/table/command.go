package table

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/morse"
)

// NewCommand returns the "morse table" command.
func NewCommand(a *app.App) *cobra.Command {
	var noHeaders bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List every supported character and its code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !noHeaders {
				fmt.Fprintf(w, "CHARACTER\tCODE\t\n")
			}
			for _, e := range morse.Alphabet() {
				fmt.Fprintf(w, "%s\t%s\t\n", display(e.Character), e.Token)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Hide table headers")
	return cmd
}

func display(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}
