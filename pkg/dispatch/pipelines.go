// Package dispatch drives the deployment pipelines of the target repository
// through the GitHub Actions REST API. The pipelines are a fixed table: each
// one maps a short name to the numeric workflow ID GitHub assigned to its
// workflow file, so dispatches address workflows by ID rather than by path.
package dispatch

// TargetRepo is the owner/name slug of the repository whose deployment
// pipelines this tool operates on.
const TargetRepo = "potassco/python-clingox"

// DefaultRef is the branch development dispatches run against.
const DefaultRef = "master"

// Pipeline describes one deployment workflow.
type Pipeline struct {
	// Name is the short identifier used in command output.
	Name string
	// WorkflowID is the numeric ID GitHub assigned to the workflow.
	// Dispatch requests address the workflow by this ID, which stays
	// stable even if the workflow file is renamed.
	WorkflowID int64
	// WorkflowFile is the file name under .github/workflows.
	WorkflowFile string
	// Summary is a one-line description shown in listings.
	Summary string
}

// Pipelines returns the deployment pipelines in dispatch order. The pip
// pipeline always runs before the conda pipeline. Callers may modify the
// returned slice freely.
func Pipelines() []Pipeline {
	return []Pipeline{
		{
			Name:         "pip",
			WorkflowID:   4455118,
			WorkflowFile: "pipdeploy.yml",
			Summary:      "build and upload Python wheels",
		},
		{
			Name:         "conda",
			WorkflowID:   4455119,
			WorkflowFile: "condadeploy.yml",
			Summary:      "build and upload conda packages",
		},
	}
}

// PipelineByName looks up a pipeline by its short name.
func PipelineByName(name string) (Pipeline, bool) {
	for _, p := range Pipelines() {
		if p.Name == name {
			return p, true
		}
	}
	return Pipeline{}, false
}
