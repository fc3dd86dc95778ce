package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var devLog = logger.New("cli:dev")

// NewDevCommand creates the dev command.
func NewDevCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Dispatch development builds of the deployment pipelines",
		Long: `Dispatch the pip and conda deployment pipelines of ` + dispatch.TargetRepo + `
on ` + dispatch.DefaultRef + ` with the wip input set to "true", producing work in progress
packages.

The pipelines are dispatched strictly one after the other, in table order.
The first failed dispatch aborts the remaining pipelines.

Examples:
  trigger dev                              # Dispatch with the default token
  trigger dev --token-file ~/.tokens/work  # Use a different token file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			return RunDev(cmd.Context(), client)
		},
	}

	addTokenFileFlag(cmd)
	return cmd
}

// RunDev dispatches every pipeline on the default branch as work in
// progress.
func RunDev(ctx context.Context, client *dispatch.Client) error {
	devLog.Print("dispatching development builds")

	err := client.DispatchAll(ctx, dispatch.DefaultRef, true, func(p dispatch.Pipeline) {
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
			fmt.Sprintf("Dispatched %s pipeline (%s on %s)", p.Name, p.WorkflowFile, dispatch.DefaultRef)))
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
		fmt.Sprintf("Watch the runs at https://github.com/%s/actions", dispatch.TargetRepo)))
	return nil
}
