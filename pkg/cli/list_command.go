package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var listLog = logger.New("cli:list")

// workflowListItem is one row of the list output.
type workflowListItem struct {
	Name     string `json:"name"`
	ID       int64  `json:"id"`
	Path     string `json:"path"`
	State    string `json:"state"`
	Pipeline string `json:"pipeline,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workflows of the target repository",
		Long: `List every GitHub Actions workflow of ` + dispatch.TargetRepo + `.

Rows belonging to a deployment pipeline are marked with the pipeline name,
which makes it easy to confirm that the pinned workflow IDs still exist in
the repository.

Examples:
  trigger list           # Render a table
  trigger list --json    # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			return RunList(cmd.Context(), client, jsonOutput)
		},
	}

	addTokenFileFlag(cmd)
	addJSONFlag(cmd)
	return cmd
}

// RunList fetches the workflow list and renders it as a table on stderr or
// as JSON on stdout.
func RunList(ctx context.Context, client *dispatch.Client, jsonOutput bool) error {
	listLog.Printf("listing workflows: jsonOutput=%v", jsonOutput)

	var spinner *console.Spinner
	if !jsonOutput {
		spinner = console.NewSpinner(fmt.Sprintf("Fetching workflows from %s...", dispatch.TargetRepo))
		spinner.Start()
	}
	workflows, err := client.ListWorkflows(ctx)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	items := make([]workflowListItem, 0, len(workflows))
	for _, wf := range workflows {
		items = append(items, workflowListItem{
			Name:     wf.Name,
			ID:       wf.ID,
			Path:     wf.Path,
			State:    wf.State,
			Pipeline: pipelineNameForWorkflow(wf.ID),
		})
	}

	if jsonOutput {
		jsonBytes, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %v", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No workflows found."))
		return nil
	}

	plural := "s"
	if len(items) == 1 {
		plural = ""
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Found %d workflow%s", len(items), plural)))

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			strconv.FormatInt(item.ID, 10),
			item.Path,
			item.State,
			item.Pipeline,
		})
	}
	fmt.Fprint(os.Stderr, console.RenderTable(console.TableConfig{
		Headers: []string{"Name", "ID", "Path", "State", "Pipeline"},
		Rows:    rows,
	}))

	warnMissingPipelines(workflows)
	return nil
}

// pipelineNameForWorkflow maps a workflow ID back to its pipeline name, or
// returns the empty string for workflows outside the pipeline table.
func pipelineNameForWorkflow(id int64) string {
	for _, p := range dispatch.Pipelines() {
		if p.WorkflowID == id {
			return p.Name
		}
	}
	return ""
}

// warnMissingPipelines flags pipelines whose pinned workflow ID no longer
// appears in the repository listing. That means the pinned ID went stale
// and dispatches would return 404.
func warnMissingPipelines(workflows []dispatch.Workflow) {
	seen := make(map[int64]bool, len(workflows))
	for _, wf := range workflows {
		seen[wf.ID] = true
	}
	for _, p := range dispatch.Pipelines() {
		if !seen[p.WorkflowID] {
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
				fmt.Sprintf("pipeline %s: workflow %d (%s) not found in repository", p.Name, p.WorkflowID, p.WorkflowFile)))
		}
	}
}
