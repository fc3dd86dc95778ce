// Package constants centralizes shared defaults for the trigger CLI.
package constants

import "path/filepath"

const (
	// CLIName is the binary name shown in usage and version output.
	CLIName = "trigger"

	// DefaultTokenRelPath is the token file location relative to the user
	// home directory.
	DefaultTokenRelPath = ".tokens/github"

	// EnvVarHTTPTimeout overrides the REST client timeout in seconds.
	EnvVarHTTPTimeout = "TRIGGER_HTTP_TIMEOUT"

	// DefaultHTTPTimeoutSeconds is the REST client timeout used when
	// EnvVarHTTPTimeout is unset.
	DefaultHTTPTimeoutSeconds = 30

	// MinHTTPTimeoutSeconds and MaxHTTPTimeoutSeconds bound the accepted
	// timeout override.
	MinHTTPTimeoutSeconds = 1
	MaxHTTPTimeoutSeconds = 600

	// DefaultWorkflowsPerPage is the page size used when listing workflows.
	// The target repository has far fewer workflows than one page.
	DefaultWorkflowsPerPage = 100
)

// GetWorkflowDir returns the repository-relative directory that holds the
// GitHub Actions workflow definitions.
func GetWorkflowDir() string {
	return filepath.Join(".github", "workflows")
}
