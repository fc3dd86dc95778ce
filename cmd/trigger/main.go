// The trigger command dispatches the deployment pipelines of
// potassco/python-clingox from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/cli"
	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/constants"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/gitutil"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var mainLog = logger.New("cmd:main")

// version is overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Dispatch the deployment pipelines of " + dispatch.TargetRepo,
	Long: `trigger drives the deployment pipelines of ` + dispatch.TargetRepo + ` through
the GitHub Actions API.

The pip pipeline (pipdeploy.yml) and the conda pipeline (condadeploy.yml)
both accept a wip input: development builds run on ` + dispatch.DefaultRef + ` with wip set
to "true", releases run on a tag, branch, or commit with wip set to "false".
Pipelines are always dispatched one after the other, pip first.

The GitHub token is read from --token-file, the GH_TOKEN or GITHUB_TOKEN
environment variables, or ~/` + constants.DefaultTokenRelPath + `.

Examples:
  trigger list             # List the workflows of the repository
  trigger dev              # Dispatch work in progress builds on master
  trigger release v1.2.0   # Dispatch release builds for a tag
  trigger check            # Validate the workflow files locally`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Help(); err != nil {
			return err
		}
		return errors.New("a subcommand is required")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of " + constants.CLIName,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.CLIName, version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print verbose output")
	rootCmd.AddCommand(
		cli.NewListCommand(),
		cli.NewDevCommand(),
		cli.NewReleaseCommand(),
		cli.NewCheckCommand(),
		cli.NewCompletionCommand(),
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		mainLog.Printf("command failed: %v", err)
		fmt.Fprintln(os.Stderr, formatCommandError(err))
		os.Exit(1)
	}
}

// formatCommandError renders a fatal command error, attaching token
// suggestions when the failure looks auth related.
func formatCommandError(err error) string {
	if gitutil.IsAuthError(err.Error()) {
		return console.FormatErrorWithSuggestions(err.Error(), []string{
			"Check that the token in ~/" + constants.DefaultTokenRelPath + " has the actions:write scope",
			"Pass --token-file to read the token from another file",
		})
	}
	return console.FormatErrorMessage(err.Error())
}
