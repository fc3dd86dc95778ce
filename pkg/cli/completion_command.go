package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/logger"
)

var completionLog = logger.New("cli:completion")

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for trigger commands.

Supported shells: bash, zsh, fish, powershell

Examples:
  # Generate completion script for bash
  trigger completion bash > ~/.bash_completion.d/trigger
  source ~/.bash_completion.d/trigger

  # Generate completion script for zsh
  trigger completion zsh > "${fpath[1]}/_trigger"
  compinit

  # Generate completion script for fish
  trigger completion fish > ~/.config/fish/completions/trigger.fish

  # Generate completion script for PowerShell
  trigger completion powershell | Out-String | Invoke-Expression`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			completionLog.Printf("generating %s completion script", shell)

			switch shell {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", shell)
			}
		},
	}
}
