// Package auth resolves the GitHub API token used for workflow dispatch
// calls. The token customarily lives in a plain file under the user's home
// directory, with the standard gh environment variables taking precedence
// when no file is named explicitly.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkaminsk/trigger/pkg/constants"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var tokenLog = logger.New("auth:token")

// Token is a resolved API token together with where it came from, for
// debug logging. Source is an environment variable name or a file path.
type Token struct {
	Value  string
	Source string
}

// DefaultTokenFile returns the default token file location under the user
// home directory.
func DefaultTokenFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %v", err)
	}
	return filepath.Join(home, filepath.FromSlash(constants.DefaultTokenRelPath)), nil
}

// Resolve returns the GitHub API token. An explicitly named tokenFile is
// the only source consulted. Otherwise GH_TOKEN and GITHUB_TOKEN take
// precedence, then the default token file.
func Resolve(tokenFile string) (Token, error) {
	if tokenFile != "" {
		value, err := readTokenFile(expandHome(tokenFile))
		if err != nil {
			return Token{}, err
		}
		tokenLog.Printf("Using token from file %s", tokenFile)
		return Token{Value: value, Source: tokenFile}, nil
	}

	for _, envVar := range []string{"GH_TOKEN", "GITHUB_TOKEN"} {
		if value := strings.TrimSpace(os.Getenv(envVar)); value != "" {
			tokenLog.Printf("Using token from %s", envVar)
			return Token{Value: value, Source: envVar}, nil
		}
	}

	path, err := DefaultTokenFile()
	if err != nil {
		return Token{}, err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return Token{}, fmt.Errorf(
			"no GitHub token found: create %s, set GH_TOKEN or GITHUB_TOKEN, or pass --token-file", path)
	}
	value, err := readTokenFile(path)
	if err != nil {
		return Token{}, err
	}
	tokenLog.Printf("Using token from default file %s", path)
	return Token{Value: value, Source: path}, nil
}

// readTokenFile reads a token file and returns its first whitespace
// separated field.
func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("token file %s does not exist", path)
		}
		return "", fmt.Errorf("failed to read token file %s: %v", path, err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return fields[0], nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
