package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhysd/actionlint"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var actionlintLog = logger.New("cli:actionlint")

// lintWorkflowFiles runs actionlint over the given workflow files and prints
// every finding in compiler style. It returns the number of findings. The
// linter's own output writer is discarded because findings are re-rendered
// with source context.
func lintWorkflowFiles(files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}
	actionlintLog.Printf("running actionlint on %d file(s): %v", len(files), files)

	linter, err := actionlint.NewLinter(io.Discard, &actionlint.LinterOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to create linter: %v", err)
	}

	findings, err := linter.LintFiles(files, nil)
	if err != nil {
		return 0, fmt.Errorf("actionlint failed: %v", err)
	}
	actionlintLog.Printf("actionlint reported %d finding(s)", len(findings))

	for _, finding := range findings {
		fmt.Fprint(os.Stderr, console.FormatError(lintFindingError(finding)))
	}
	return len(findings), nil
}

// lintFindingError converts an actionlint finding into the shared diagnostic
// shape, attaching context lines from the source file.
func lintFindingError(finding *actionlint.Error) console.ValidationError {
	message := finding.Message
	if finding.Kind != "" {
		message = fmt.Sprintf("[%s] %s", finding.Kind, finding.Message)
	}

	var context []string
	if content, err := os.ReadFile(finding.Filepath); err == nil {
		context = sourceWindow(string(content), finding.Line)
	}

	return console.ValidationError{
		Position: console.ErrorPosition{
			File:   finding.Filepath,
			Line:   finding.Line,
			Column: finding.Column,
		},
		Type:    "error",
		Message: message,
		Context: context,
	}
}

// sourceWindow returns up to five lines centered on line. The window stays
// symmetric so rendering numbers it from the middle entry.
func sourceWindow(content string, line int) []string {
	if line <= 0 {
		return nil
	}
	lines := strings.Split(content, "\n")
	if line > len(lines) {
		return nil
	}
	radius := 2
	if line-1 < radius {
		radius = line - 1
	}
	if len(lines)-line < radius {
		radius = len(lines) - line
	}
	return lines[line-1-radius : line+radius]
}
