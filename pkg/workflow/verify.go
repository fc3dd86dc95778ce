package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/dispatch"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var verifyLog = logger.New("workflow:verify")

// CheckResult is the outcome of checking one pipeline's workflow file.
type CheckResult struct {
	Pipeline dispatch.Pipeline
	// Path is where the workflow file was expected.
	Path string
	// Definition is the parsed workflow, nil when the file is missing or
	// does not parse.
	Definition *Definition
	// Errors holds everything that would make a dispatch of this pipeline
	// fail. Empty means the pipeline is dispatchable.
	Errors []error
}

// OK reports whether the pipeline can be dispatched as configured.
func (r CheckResult) OK() bool {
	return len(r.Errors) == 0
}

// CheckPipelines verifies that every pipeline's workflow file under dir can
// be dispatched. Files are checked concurrently; results come back in
// pipeline table order.
func CheckPipelines(dir string, pipelines []dispatch.Pipeline) []CheckResult {
	if len(pipelines) == 0 {
		return nil
	}
	verifyLog.Printf("checking %d pipelines under %s", len(pipelines), dir)

	results := make([]CheckResult, len(pipelines))
	p := pool.New().WithMaxGoroutines(len(pipelines))
	for i, pipeline := range pipelines {
		p.Go(func() {
			results[i] = checkPipeline(dir, pipeline)
		})
	}
	p.Wait()
	return results
}

func checkPipeline(dir string, pipeline dispatch.Pipeline) CheckResult {
	path := filepath.Join(dir, pipeline.WorkflowFile)
	result := CheckResult{Pipeline: pipeline, Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Errors = append(result.Errors,
				fmt.Errorf("workflow file %s does not exist", console.ToRelativePath(path)))
		} else {
			result.Errors = append(result.Errors,
				fmt.Errorf("failed to read workflow file: %v", err))
		}
		return result
	}

	def, err := ParseDefinition(content, path)
	if err != nil {
		result.Errors = append(result.Errors, err)
		return result
	}
	result.Definition = def

	if !def.HasWorkflowDispatch() {
		result.Errors = append(result.Errors,
			fmt.Errorf("%s does not declare the workflow_dispatch trigger", pipeline.WorkflowFile))
		return result
	}
	if !def.HasDispatchInput("wip") {
		result.Errors = append(result.Errors,
			fmt.Errorf("%s does not declare the wip input, dispatches would be rejected", pipeline.WorkflowFile))
	}
	return result
}
