//go:build !integration

package gitutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rkaminsk/trigger/pkg/testutil"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name   string
		errMsg string
		want   bool
	}{
		{
			name:   "HTTP 401 from the API",
			errMsg: "HTTP 401: Bad credentials (https://api.github.com/repos/potassco/python-clingox/actions/workflows)",
			want:   true,
		},
		{
			name:   "unauthorized",
			errMsg: "request failed: Unauthorized",
			want:   true,
		},
		{
			name:   "forbidden",
			errMsg: "HTTP 403: Forbidden",
			want:   true,
		},
		{
			name:   "token env var mentioned",
			errMsg: "GH_TOKEN is not set",
			want:   true,
		},
		{
			name:   "authentication word",
			errMsg: "authentication required",
			want:   true,
		},
		{
			name:   "plain not found",
			errMsg: "HTTP 404: Not Found",
			want:   false,
		},
		{
			name:   "network error",
			errMsg: "dial tcp: lookup api.github.com: no such host",
			want:   false,
		},
		{
			name:   "empty message",
			errMsg: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.errMsg); got != tt.want {
				t.Errorf("IsAuthError(%q) = %v, want %v", tt.errMsg, got, tt.want)
			}
		})
	}
}

func TestIsHexString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"full commit SHA", "a3f9c2e41b58d67c90e12f34a5b6c7d8e9f0a1b2", true},
		{"short SHA", "a3f9c2e", true},
		{"uppercase hex", "A3F9C2E", true},
		{"tag name", "v1.2.0", false},
		{"branch name", "master", false},
		{"empty string", "", false},
		{"hex with space", "a3f9 c2e", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHexString(tt.input); got != tt.want {
				t.Errorf("IsHexString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindRepoRoot(t *testing.T) {
	tmpDir := testutil.TempDir(t, "repo-*")

	// Lay out <root>/.git and a nested working directory.
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	nested := filepath.Join(tmpDir, ".github", "workflows")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	root, ok := FindRepoRoot(nested)
	if !ok {
		t.Fatal("expected to find repository root")
	}
	if root != tmpDir {
		t.Errorf("FindRepoRoot() = %q, want %q", root, tmpDir)
	}

	// Starting at the root itself also works.
	root, ok = FindRepoRoot(tmpDir)
	if !ok || root != tmpDir {
		t.Errorf("FindRepoRoot(root) = %q, %v, want %q, true", root, ok, tmpDir)
	}
}

func TestFindRepoRootNotFound(t *testing.T) {
	tmpDir := testutil.TempDir(t, "norepo-*")

	if root, ok := FindRepoRoot(tmpDir); ok {
		t.Errorf("expected no repository root, got %q", root)
	}
}
