package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
)

// NewCommand returns the "morse completion" command. It needs the root
// command to generate completions for the whole tree.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	generators := map[string]func(io.Writer) error{
		"bash":       root.GenBashCompletion,
		"zsh":        root.GenZshCompletion,
		"fish":       func(w io.Writer) error { return root.GenFishCompletion(w, true) },
		"powershell": root.GenPowerShellCompletion,
	}

	return &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `Print a shell completion script.

Bash:
  $ source <(morse completion bash)

Zsh:
  $ morse completion zsh > "${fpath[1]}/_morse"

Fish:
  $ morse completion fish > ~/.config/fish/completions/morse.fish
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generators[args[0]](a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
