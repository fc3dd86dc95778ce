package cli

import (
	"os"
	"strings"

	"github.com/rkaminsk/trigger/pkg/logger"
)

var githubLog = logger.New("cli:github")

// getGitHubHost resolves the GitHub hostname for API calls. GITHUB_SERVER_URL
// (set on Actions runners) wins over GH_HOST (the gh CLI convention), with
// github.com as the default. Schemes and trailing slashes are stripped
// because the REST client wants a bare hostname.
func getGitHubHost() string {
	host := os.Getenv("GITHUB_SERVER_URL")
	if host == "" {
		host = os.Getenv("GH_HOST")
	}
	if host == "" {
		githubLog.Print("using default GitHub host github.com")
		return "github.com"
	}

	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	githubLog.Printf("resolved GitHub host: %s", host)
	return host
}
