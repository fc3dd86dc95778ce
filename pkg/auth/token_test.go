//go:build !integration

package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkaminsk/trigger/pkg/testutil"
)

// setHome points the user home directory at dir for the duration of the
// test, covering both unix and windows lookups.
func setHome(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
	} else {
		t.Setenv("HOME", dir)
	}
}

func clearTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GH_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
}

func writeTokenFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "github")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveExplicitFile(t *testing.T) {
	clearTokenEnv(t)
	tmpDir := testutil.TempDir(t, "tokens-*")
	path := writeTokenFile(t, tmpDir, "ghp_explicit\n")

	token, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "ghp_explicit", token.Value)
	assert.Equal(t, path, token.Source)
}

func TestResolveExplicitFileBeatsEnvironment(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_env")
	tmpDir := testutil.TempDir(t, "tokens-*")
	path := writeTokenFile(t, tmpDir, "ghp_file")

	token, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "ghp_file", token.Value, "an explicitly named file must win over the environment")
}

func TestResolveEnvPrecedence(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_gh")
	t.Setenv("GITHUB_TOKEN", "ghp_github")

	token, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "ghp_gh", token.Value, "GH_TOKEN takes precedence over GITHUB_TOKEN")
	assert.Equal(t, "GH_TOKEN", token.Source)
}

func TestResolveGitHubTokenFallback(t *testing.T) {
	t.Setenv("GH_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "ghp_github")

	token, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "ghp_github", token.Value)
	assert.Equal(t, "GITHUB_TOKEN", token.Source)
}

func TestResolveDefaultFile(t *testing.T) {
	clearTokenEnv(t)
	home := testutil.TempDir(t, "home-*")
	setHome(t, home)

	tokensDir := filepath.Join(home, ".tokens")
	require.NoError(t, os.MkdirAll(tokensDir, 0700))
	writeTokenFile(t, tokensDir, "ghp_default\n")

	token, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "ghp_default", token.Value)
	assert.Equal(t, filepath.Join(tokensDir, "github"), token.Source)
}

func TestResolveNoTokenAnywhere(t *testing.T) {
	clearTokenEnv(t)
	home := testutil.TempDir(t, "home-*")
	setHome(t, home)

	_, err := Resolve("")
	require.Error(t, err)
	// The error must guide the operator to every alternative.
	assert.Contains(t, err.Error(), filepath.Join(home, ".tokens", "github"))
	assert.Contains(t, err.Error(), "GH_TOKEN")
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	assert.Contains(t, err.Error(), "--token-file")
}

func TestResolveExplicitFileMissing(t *testing.T) {
	clearTokenEnv(t)
	tmpDir := testutil.TempDir(t, "tokens-*")
	path := filepath.Join(tmpDir, "nope")

	_, err := Resolve(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestReadTokenFileTrimsContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr string
	}{
		{
			name:    "trailing newline",
			content: "ghp_abc123\n",
			want:    "ghp_abc123",
		},
		{
			name:    "surrounding whitespace",
			content: "  ghp_abc123  \n",
			want:    "ghp_abc123",
		},
		{
			name:    "first field of multiline file",
			content: "ghp_abc123\n# comment line\n",
			want:    "ghp_abc123",
		},
		{
			name:    "empty file",
			content: "",
			wantErr: "is empty",
		},
		{
			name:    "whitespace only",
			content: " \n\t\n",
			wantErr: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := testutil.TempDir(t, "tokens-*")
			path := writeTokenFile(t, tmpDir, tt.content)

			got, err := readTokenFile(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := testutil.TempDir(t, "home-*")
	setHome(t, home)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde slash", "~/.tokens/github", filepath.Join(home, ".tokens/github")},
		{"bare tilde", "~", home},
		{"absolute path unchanged", "/etc/token", "/etc/token"},
		{"relative path unchanged", "tokens/github", "tokens/github"},
		{"tilde inside path unchanged", "/data/~backup", "/data/~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandHome(tt.input); got != tt.want {
				t.Errorf("expandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultTokenFile(t *testing.T) {
	home := testutil.TempDir(t, "home-*")
	setHome(t, home)

	path, err := DefaultTokenFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tokens", "github"), path)
}
