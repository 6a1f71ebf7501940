package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionWriters = map[string]func(root *cobra.Command, out io.Writer) error{
	"bash": func(root *cobra.Command, out io.Writer) error {
		return root.GenBashCompletionV2(out, true)
	},
	"zsh": func(root *cobra.Command, out io.Writer) error {
		return root.GenZshCompletion(out)
	},
	"fish": func(root *cobra.Command, out io.Writer) error {
		return root.GenFishCompletion(out, true)
	},
	"powershell": func(root *cobra.Command, out io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(out)
	},
}

// Completion returns the completion command for shell autocompletion.
//
// Completion covers the delete command's infra type argument as well as
// subcommands and flags.
func Completion() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for atlantis.

  $ source <(atlantis completion bash)
  $ atlantis completion zsh > "${fpath[1]}/_atlantis"
  $ atlantis completion fish | source
  PS> atlantis completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ok := completionWriters[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell %q", args[0])
			}
			return write(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
