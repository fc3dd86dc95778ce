package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/constants"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/gitutil"
	"github.com/rkaminsk/trigger/pkg/logger"
	"github.com/rkaminsk/trigger/pkg/workflow"
)

var checkLog = logger.New("cli:check")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the deployment workflow files can be dispatched",
		Long: `Check the deployment workflow files in a local checkout of
` + dispatch.TargetRepo + `.

For every pipeline the workflow file must exist under .github/workflows,
parse as YAML, declare the workflow_dispatch trigger, and accept the wip
input. Files that pass are additionally linted with actionlint.

The command exits non-zero when any pipeline fails its checks.

Examples:
  trigger check              # Check the repository enclosing the cwd
  trigger check --dir dir    # Check a specific workflows directory
  trigger check --watch      # Re-run the checks whenever a file changes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			watch, _ := cmd.Flags().GetBool("watch")
			return RunCheck(dir, watch)
		},
	}

	cmd.Flags().String("dir", "", "workflows directory (default: .github/workflows of the enclosing repository)")
	cmd.Flags().Bool("watch", false, "watch the directory and re-run the checks on changes")
	return cmd
}

// RunCheck runs the pipeline checks once, or repeatedly in watch mode.
func RunCheck(dir string, watch bool) error {
	resolved, err := resolveWorkflowsDir(dir)
	if err != nil {
		return err
	}
	checkLog.Printf("checking workflows in %s (watch=%v)", resolved, watch)

	if watch {
		return watchWorkflows(resolved, func() error { return runChecks(resolved) })
	}
	return runChecks(resolved)
}

// resolveWorkflowsDir locates the workflows directory to check. Without an
// explicit --dir it walks up from the working directory to the enclosing
// git repository.
func resolveWorkflowsDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %v", err)
		}
		root, ok := gitutil.FindRepoRoot(cwd)
		if !ok {
			return "", errors.New("not inside a git repository, pass --dir to name the workflows directory")
		}
		dir = filepath.Join(root, constants.GetWorkflowDir())
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("workflows directory %s does not exist", console.ToRelativePath(dir))
		}
		return "", fmt.Errorf("failed to inspect %s: %v", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", console.ToRelativePath(dir))
	}
	return dir, nil
}

// runChecks checks every pipeline once and lints the files that parsed.
func runChecks(dir string) error {
	results := workflow.CheckPipelines(dir, dispatch.Pipelines())

	problems := 0
	var lintable []string
	for _, result := range results {
		for _, resultErr := range result.Errors {
			problems++
			var verr console.ValidationError
			if errors.As(resultErr, &verr) {
				fmt.Fprint(os.Stderr, console.FormatError(verr))
			} else {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(resultErr.Error()))
			}
		}
		if result.Definition != nil {
			lintable = append(lintable, result.Path)
		}
		if result.OK() {
			fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
				fmt.Sprintf("%s pipeline can be dispatched (%s)", result.Pipeline.Name, result.Pipeline.WorkflowFile)))
		}
	}

	findings, err := lintWorkflowFiles(lintable)
	if err != nil {
		return err
	}
	problems += findings

	if problems > 0 {
		return fmt.Errorf("found %d problem(s) in workflow files", problems)
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage("All pipelines can be dispatched"))
	return nil
}
