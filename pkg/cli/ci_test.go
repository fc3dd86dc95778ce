package cli

import (
	"testing"
)

// clearCIEnv blanks every CI indicator so tests behave the same on laptops
// and runners.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, v := range ciEnvVars {
		t.Setenv(v, "")
	}
}

func TestIsRunningInCI(t *testing.T) {
	clearCIEnv(t)
	if IsRunningInCI() {
		t.Error("expected no CI detection with all variables blank")
	}

	for _, v := range ciEnvVars {
		t.Run(v, func(t *testing.T) {
			clearCIEnv(t)
			t.Setenv(v, "true")
			if !IsRunningInCI() {
				t.Errorf("expected CI detection via %s", v)
			}
		})
	}
}
