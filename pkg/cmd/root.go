package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/cmd/completion"
	morseconfig "github.com/birdayz/morse/pkg/cmd/config"
	"github.com/birdayz/morse/pkg/cmd/decode"
	"github.com/birdayz/morse/pkg/cmd/encode"
	"github.com/birdayz/morse/pkg/cmd/table"
	"github.com/birdayz/morse/pkg/morse"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the full command tree around a fresh App.
func NewRootCommand(version, commit string) *cobra.Command {
	a := app.New()

	alphabet := morse.Extension
	if alphabet == "" {
		alphabet = "international"
	}

	root := &cobra.Command{
		Use:          "morse",
		Short:        "Translate text to and from morse code",
		Version:      fmt.Sprintf("%s (%s) alphabet=%s", version, commit, alphabet),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if f, ok := a.OutWriter.(*os.File); ok {
				a.ColorableOut = colorable.NewColorable(f)
			} else {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.morse/config)")
	root.PersistentFlags().BoolVar(&a.NoColorFlag, "no-color", false, "Disable coloured output")
	root.PersistentFlags().BoolVarP(&a.VerboseFlag, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		table.NewCommand(a),
		morseconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
