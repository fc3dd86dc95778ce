// Package testutil provides shared helpers for tests.
package testutil

import (
	"os"
	"sync"
	"testing"
)

var (
	testRunDirOnce sync.Once
	testRunDir     string
)

// GetTestRunDir returns the directory under which all temporary test
// directories for this process are created. The directory is created on
// first use and shared for the lifetime of the process, which keeps test
// artifacts grouped together when inspecting a failed run.
func GetTestRunDir() string {
	testRunDirOnce.Do(func() {
		dir, err := os.MkdirTemp("", "test-runs-")
		if err != nil {
			// Fall back to the system temp dir; tests will surface
			// the failure when they try to write.
			testRunDir = os.TempDir()
			return
		}
		testRunDir = dir
	})
	return testRunDir
}

// TempDir creates a temporary directory under the shared test run
// directory using the given pattern (see os.MkdirTemp) and removes it when
// the test finishes.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()

	dir, err := os.MkdirTemp(GetTestRunDir(), pattern)
	if err != nil {
		t.Fatalf("failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}
