package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/auth"
	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var clientLog = logger.New("cli:client")

// buildClient resolves the GitHub token and constructs the API client for
// the target repository.
func buildClient(cmd *cobra.Command) (*dispatch.Client, error) {
	tokenFile, _ := cmd.Flags().GetString("token-file")
	token, err := auth.Resolve(tokenFile)
	if err != nil {
		return nil, err
	}
	clientLog.Printf("using token from %s", token.Source)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintln(os.Stderr, console.FormatVerboseMessage("Using token from "+token.Source))
	}
	return dispatch.NewClient(dispatch.Options{
		Token: token.Value,
		Host:  getGitHubHost(),
	})
}

// addTokenFileFlag registers the --token-file flag shared by every command
// that talks to the API.
func addTokenFileFlag(cmd *cobra.Command) {
	cmd.Flags().String("token-file", "", "read the GitHub token from this file (default ~/.tokens/github)")
}

// addJSONFlag registers the --json output flag.
func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "output in JSON format")
}
