package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/logger"
	"github.com/rkaminsk/trigger/pkg/styles"
	"github.com/rkaminsk/trigger/pkg/tty"
)

var releaseLog = logger.New("cli:release")

// NewReleaseCommand creates the release command.
func NewReleaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release REF",
		Short: "Dispatch release builds of the deployment pipelines",
		Long: `Dispatch the pip and conda deployment pipelines of ` + dispatch.TargetRepo + `
on the given git ref with the wip input set to "false", publishing final
packages.

REF is the tag, branch, or commit to release. The pipelines are dispatched
strictly one after the other, in table order, and the first failed dispatch
aborts the rest.

A confirmation prompt is shown before anything is dispatched. Pass --yes to
skip it, which is also required when running without a terminal.

Examples:
  trigger release v1.2.0         # Release the v1.2.0 tag
  trigger release v1.2.0 --yes   # Skip the confirmation prompt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("release requires exactly one REF argument\n\nUsage:\n  %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			skipConfirm, _ := cmd.Flags().GetBool("yes")
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			return RunRelease(cmd.Context(), client, args[0], skipConfirm)
		},
	}

	addTokenFileFlag(cmd)
	cmd.Flags().BoolP("yes", "y", false, "dispatch without asking for confirmation")
	return cmd
}

// RunRelease validates the ref, shows the release plan, asks for
// confirmation, and dispatches every pipeline with wip set to "false".
func RunRelease(ctx context.Context, client *dispatch.Client, ref string, skipConfirm bool) error {
	if err := ValidateRef(ref); err != nil {
		return err
	}
	releaseLog.Printf("releasing ref %s (skipConfirm=%v)", ref, skipConfirm)

	fmt.Fprintln(os.Stderr, releasePlan(ref))

	if !skipConfirm {
		if err := confirmRelease(ref); err != nil {
			return err
		}
	}

	err := client.DispatchAll(ctx, ref, false, func(p dispatch.Pipeline) {
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
			fmt.Sprintf("Dispatched %s pipeline (%s on %s)", p.Name, p.WorkflowFile, ref)))
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
		fmt.Sprintf("Watch the runs at https://github.com/%s/actions", dispatch.TargetRepo)))
	return nil
}

// releasePlan renders the screen shown before the confirmation prompt.
func releasePlan(ref string) string {
	names := make([]string, 0, 2)
	for _, p := range dispatch.Pipelines() {
		names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.WorkflowFile))
	}

	return console.LayoutJoinVertical(
		console.LayoutTitleBox("Release Plan", 60),
		console.LayoutInfoSection("repository", dispatch.TargetRepo),
		console.LayoutInfoSection("ref", fmt.Sprintf("%s (%s)", ref, refKind(ref))),
		console.LayoutInfoSection("pipelines", strings.Join(names, ", ")),
		console.LayoutInfoSection("wip", "false"),
		console.LayoutEmphasisBox("Dispatching publishes final packages to the package indexes.", styles.ColorYellow),
	)
}

// confirmRelease prompts before dispatching. Without a terminal the prompt
// cannot be answered, so --yes is required there.
func confirmRelease(ref string) error {
	if IsRunningInCI() || !tty.IsStdinTerminal() {
		return errors.New("confirmation requires a terminal, pass --yes to dispatch without prompting")
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Dispatch the release pipelines for %s?", ref)).
				Affirmative("Dispatch").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithAccessible(console.IsAccessibleMode())

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read confirmation: %v", err)
	}
	if !confirmed {
		return errors.New("release cancelled")
	}
	return nil
}
