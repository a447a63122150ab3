package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/birdayz/morse/pkg/app"
)

// NewCommand returns the "morse config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle morse configuration",
	}

	cmd.AddCommand(
		newViewCommand(a),
		newSetOutputCommand(a),
		newSelectOutputCommand(a),
		newSetLenientCommand(a),
	)

	return cmd
}

func newViewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.OutWriter, "# %s\n", a.Cfg.Path())
			enc := yaml.NewEncoder(a.OutWriter)
			enc.SetIndent(2)
			if err := enc.Encode(&a.Cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func newSetOutputCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "set-output FORMAT",
		Short:             "Sets the default output format",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.CompleteOutputFormat,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setOutput(a, args[0])
		},
	}
}

func newSelectOutputCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-output",
		Short: "Interactively select the default output format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := string(a.Output())
			pos := 0
			for i, f := range app.OutputFormats {
				if f == current {
					pos = i
				}
			}

			searcher := func(input string, index int) bool {
				return strings.Contains(app.OutputFormats[index], strings.TrimSpace(input))
			}

			p := promptui.Select{
				Label:     "Select output format",
				Items:     app.OutputFormats,
				Searcher:  searcher,
				Size:      len(app.OutputFormats),
				CursorPos: pos,
				Stdin:     readCloser{a.InReader},
				Stdout:    writeCloser{a.OutWriter},
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}
			return setOutput(a, selected)
		},
	}
}

func newSetLenientCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:       "set-lenient true|false",
		Short:     "Sets whether unsupported characters fail a translation",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			lenient, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			if err := a.Cfg.SetLenient(lenient); err != nil {
				return err
			}
			fmt.Fprintf(a.OutWriter, "Set lenient to %v.\n", lenient)
			return nil
		},
	}
}

func setOutput(a *app.App, format string) error {
	var f app.OutputFormat
	if err := f.Set(format); err != nil {
		return err
	}
	if err := a.Cfg.SetOutput(f.String()); err != nil {
		return err
	}
	fmt.Fprintf(a.OutWriter, "Switched default output to \"%v\".\n", f)
	return nil
}
