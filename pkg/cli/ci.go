package cli

import (
	"os"

	"github.com/rkaminsk/trigger/pkg/logger"
)

var ciLog = logger.New("cli:ci")

// ciEnvVars are the environment variables CI systems set. GITHUB_ACTIONS
// covers Actions runners, CI and CONTINUOUS_INTEGRATION cover most others.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
}

// IsRunningInCI reports whether the process runs in a CI environment.
// Interactive prompts are skipped there.
func IsRunningInCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			ciLog.Printf("CI environment detected via %s", v)
			return true
		}
	}
	return false
}
